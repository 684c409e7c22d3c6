package session

import (
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"

	"sherlok/internal/model"
)

func TestAppend_CapsAtSixTurns(t *testing.T) {
	store := NewStore()

	for i := 0; i < 7; i++ {
		store.Append("s1",
			model.Turn{Role: model.RoleUser, Content: fmt.Sprintf("q%d", i)},
			model.Turn{Role: model.RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}

	turns := store.Turns("s1")
	assert.Equal(t, 6, len(turns))
	// Oldest surviving turn is the user half of the 5th exchange.
	assert.Equal(t, "q4", turns[0].Content)
	assert.Equal(t, "a6", turns[5].Content)
}

func TestReset_EmptiesSession(t *testing.T) {
	store := NewStore()
	store.Append("s1", model.Turn{Role: model.RoleUser, Content: "hello"})

	store.Reset("s1")
	assert.Equal(t, 0, len(store.Turns("s1")))

	// Idempotent.
	store.Reset("s1")
	assert.Equal(t, 0, len(store.Turns("s1")))
}

func TestTurns_ReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Append("s1", model.Turn{Role: model.RoleUser, Content: "hello"})

	turns := store.Turns("s1")
	turns[0].Content = "mutated"

	assert.Equal(t, "hello", store.Turns("s1")[0].Content)
}

func TestEnsure_MintsIDWhenMissing(t *testing.T) {
	store := NewStore()

	assert.Equal(t, "given", store.Ensure("given"))

	minted := store.Ensure("")
	assert.NotEqual(t, "", minted)
	assert.NotEqual(t, minted, store.Ensure(""))
}

func TestSessions_AreIndependent(t *testing.T) {
	store := NewStore()
	store.Append("a", model.Turn{Role: model.RoleUser, Content: "from a"})
	store.Append("b", model.Turn{Role: model.RoleUser, Content: "from b"})

	store.Reset("a")

	assert.Equal(t, 0, len(store.Turns("a")))
	assert.Equal(t, 1, len(store.Turns("b")))
}
