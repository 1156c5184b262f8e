package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type added struct{ n int }
type removed struct{ n int }

func TestPublishReachesSubscribersOfTheSameType(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []int
	unsub := Subscribe(func(_ context.Context, e added) {
		got = append(got, e.n)
	})
	defer unsub()

	ctx := context.Background()
	Publish(ctx, added{1})
	Publish(ctx, removed{2})
	Publish(ctx, added{3})

	require.Equal(t, []int{1, 3}, got)
}

func TestMultipleSubscribersRunInOrder(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []string
	defer Subscribe(func(context.Context, added) { got = append(got, "first") })()
	defer Subscribe(func(context.Context, added) { got = append(got, "second") })()

	Publish(context.Background(), added{})
	require.Equal(t, []string{"first", "second"}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	Use(New())
	defer Use(nil)

	calls := 0
	unsub := Subscribe(func(context.Context, added) { calls++ })

	ctx := context.Background()
	Publish(ctx, added{})
	unsub()
	Publish(ctx, added{})
	unsub() // idempotent

	require.Equal(t, 1, calls)
}

func TestNoBusInstalled(t *testing.T) {
	Use(nil)

	unsub := Subscribe(func(context.Context, added) {
		t.Fatal("handler registered without a bus")
	})
	Publish(context.Background(), added{})
	unsub()
}

func TestContextIsForwarded(t *testing.T) {
	Use(New())
	defer Use(nil)

	type key struct{}
	var got any
	defer Subscribe(func(ctx context.Context, _ added) {
		got = ctx.Value(key{})
	})()

	Publish(context.WithValue(context.Background(), key{}, "v"), added{})
	require.Equal(t, "v", got)
}
