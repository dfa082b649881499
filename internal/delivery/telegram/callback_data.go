package telegram

import (
	"strconv"
	"strings"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// Callback action constants.
const (
	actionMode   = "mode"
	actionAnswer = "ans"
	actionStop   = "stop"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildModeCallback builds callback data for starting a game in mode.
func buildModeCallback(mode entities.Mode) string {
	return callbackData{
		Action: actionMode,
		Params: []string{string(mode)},
	}.encode()
}

// buildAnswerCallback builds callback data for picking the option at index in round.
func buildAnswerCallback(round, index int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(round), strconv.Itoa(index)},
	}.encode()
}

func buildStopCallback() string {
	return actionStop
}

// parseMode returns the mode of a mode callback.
func (cd callbackData) parseMode() (entities.Mode, bool) {
	if cd.Action != actionMode || len(cd.Params) != 1 {
		return "", false
	}
	mode := entities.Mode(cd.Params[0])
	return mode, mode.Valid()
}

// parseAnswer returns the round and option index of an answer callback.
func (cd callbackData) parseAnswer() (round, index int, ok bool) {
	if cd.Action != actionAnswer || len(cd.Params) != 2 {
		return 0, 0, false
	}

	round, err1 := strconv.Atoi(cd.Params[0])
	index, err2 := strconv.Atoi(cd.Params[1])
	if err1 != nil || err2 != nil || round < 1 || index < 0 {
		return 0, 0, false
	}
	return round, index, true
}
