package httpapi

import "sync"

// maxPendingSpeech bounds the feed of a client that stopped polling.
const maxPendingSpeech = 16

// Utterance is a phrase the browser should speak.
type Utterance struct {
	Text string  `json:"text"`
	Rate float64 `json:"rate"`
}

// SpeechFeed queues phrases of one session until the client polls them.
type SpeechFeed struct {
	mu      sync.Mutex
	pending []Utterance
}

func NewSpeechFeed() *SpeechFeed {
	return &SpeechFeed{}
}

// Speak queues a phrase, dropping the oldest one when the feed is full.
func (f *SpeechFeed) Speak(text string, rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pending) == maxPendingSpeech {
		f.pending = f.pending[1:]
	}
	f.pending = append(f.pending, Utterance{Text: text, Rate: rate})
}

// Cancel drops every queued phrase.
func (f *SpeechFeed) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = nil
}

// Drain returns the queued phrases and empties the feed.
func (f *SpeechFeed) Drain() []Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.pending
	f.pending = nil
	if out == nil {
		return []Utterance{}
	}
	return out
}
