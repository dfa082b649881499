package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

func TestModeCallback(t *testing.T) {
	for _, mode := range entities.Modes() {
		data := buildModeCallback(mode)
		assert.LessOrEqual(t, len(data), 64, "telegram limits callback data to 64 bytes")

		got, ok := decodeCallback(data).parseMode()
		assert.True(t, ok)
		assert.Equal(t, mode, got)
	}

	_, ok := decodeCallback("mode:trivia").parseMode()
	assert.False(t, ok)
	_, ok = decodeCallback("ans:1:2").parseMode()
	assert.False(t, ok)
}

func TestAnswerCallback(t *testing.T) {
	data := buildAnswerCallback(12, 3)
	assert.Equal(t, "ans:12:3", data)

	round, index, ok := decodeCallback(data).parseAnswer()
	assert.True(t, ok)
	assert.Equal(t, 12, round)
	assert.Equal(t, 3, index)

	for _, bad := range []string{"ans", "ans:1", "ans:x:1", "ans:0:1", "ans:1:-1", "ans:1:2:3", "mode:1:2"} {
		_, _, ok := decodeCallback(bad).parseAnswer()
		assert.False(t, ok, bad)
	}
}
