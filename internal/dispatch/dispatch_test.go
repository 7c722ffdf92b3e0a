package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type createThing struct {
	Name string
}

func (c createThing) Validate() error {
	if c.Name == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

type renameThing struct {
	Name string
}

type thingCreated struct {
	Name string
}

func TestSend_RoutesToRegisteredHandler(t *testing.T) {
	t.Parallel()
	d := New()

	MustRegister(d, func(ctx context.Context, cmd createThing) (string, error) {
		return "created:" + cmd.Name, nil
	})

	got, err := Send[createThing, string](context.Background(), d, createThing{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "created:x", got)
}

func TestSend_MissingHandler(t *testing.T) {
	t.Parallel()
	d := New()

	_, err := Send[renameThing, string](context.Background(), d, renameThing{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestRegister_DuplicateFails(t *testing.T) {
	t.Parallel()
	d := New()

	h := func(ctx context.Context, cmd createThing) (string, error) { return "", nil }
	require.NoError(t, Register(d, h))
	require.Error(t, Register(d, h))
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()
	d := New()

	h := func(ctx context.Context, cmd createThing) (string, error) { return "", nil }
	MustRegister(d, h)
	assert.Panics(t, func() { MustRegister(d, h) })
}

func TestSend_ValidationShortCircuitsHandler(t *testing.T) {
	t.Parallel()
	d := New()

	called := false
	MustRegister(d, func(ctx context.Context, cmd createThing) (string, error) {
		called = true
		return "", nil
	})

	_, err := Send[createThing, string](context.Background(), d, createThing{})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, called, "handler must not run when validation fails")
}

func TestPublish_RunsSubscribersInRegistrationOrder(t *testing.T) {
	t.Parallel()
	d := New()

	var order []string
	Subscribe(d, "first", func(ctx context.Context, e thingCreated) error {
		order = append(order, "first")
		return nil
	})
	Subscribe(d, "second", func(ctx context.Context, e thingCreated) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), thingCreated{Name: "x"}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublish_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	d := New()

	boom := errors.New("boom")
	var order []string
	Subscribe(d, "ok", func(ctx context.Context, e thingCreated) error {
		order = append(order, "ok")
		return nil
	})
	Subscribe(d, "fails", func(ctx context.Context, e thingCreated) error {
		return boom
	})
	Subscribe(d, "never", func(ctx context.Context, e thingCreated) error {
		order = append(order, "never")
		return nil
	})

	err := d.Publish(context.Background(), thingCreated{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fails")
	assert.Equal(t, []string{"ok"}, order)
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	t.Parallel()
	d := New()
	require.NoError(t, d.Publish(context.Background(), thingCreated{}))
}
