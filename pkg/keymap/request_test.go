package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestNameRoundTripsThroughGetRequest(t *testing.T) {
	name := RequestName(ReqMoveDown)
	assert.Equal(t, ReqMoveDown, GetRequest(name))
}

func TestRequestNameUnknownFallsBackToNone(t *testing.T) {
	assert.Equal(t, "none", RequestName(Request(999999)))
}
