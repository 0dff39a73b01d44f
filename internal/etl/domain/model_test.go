package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRelType(t *testing.T) {
	assert.Equal(t, "VIEWED", Event{Kind: EventView}.RelType())
	assert.Equal(t, "CLICKED", Event{Kind: EventClick}.RelType())
	assert.Equal(t, "ADDED_TO_CART", Event{Kind: EventAddToCart}.RelType())
	assert.Equal(t, "INTERACTED_WITH", Event{Kind: "wishlist"}.RelType())
}

func TestLoadErrorWrapsSentinel(t *testing.T) {
	err := &LoadError{Kind: "products", Chunk: 3, Err: errors.New("boom")}
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "products")
	assert.Contains(t, err.Error(), "3")
}

func TestConnectionUnavailableErrorWrapsSentinel(t *testing.T) {
	err := &ConnectionUnavailableError{Target: "postgres", Attempts: 30, Err: errors.New("refused")}
	assert.ErrorIs(t, err, ErrConnectionUnavailable)
	assert.Contains(t, err.Error(), "postgres")
}
