package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribeAndDispatch(t *testing.T) {
	l := NewListener(nil)

	var first, second []string
	unsubFirst := l.Subscribe(func(payload string) { first = append(first, payload) })
	l.Subscribe(func(payload string) { second = append(second, payload) })

	l.dispatch("res-1")
	require.Equal(t, []string{"res-1"}, first)
	require.Equal(t, []string{"res-1"}, second)

	// After unsubscribing, only the remaining handler sees changes.
	unsubFirst()
	l.dispatch("res-2")
	require.Equal(t, []string{"res-1"}, first)
	require.Equal(t, []string{"res-1", "res-2"}, second)

	// Unsubscribing twice is harmless.
	unsubFirst()
	l.dispatch("res-3")
	require.Len(t, second, 3)
}
