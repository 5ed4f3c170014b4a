package cliques

import (
	"bufio"
	"io"
	"sync"
	"sync/atomic"
)

// Sink receives solutions as they are found.
//
// Emit is called concurrently from several search goroutines; implementations
// must serialize whatever they write.
type Sink interface {
	Emit(Solution) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Solution) error

func (f SinkFunc) Emit(s Solution) error {
	return f(s)
}

// WriterSink writes one line per solution to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Emit(sol Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range sol {
		if i > 0 {
			if err := s.w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := s.w.Write(w.Letters[:]); err != nil {
			return err
		}
	}
	return s.w.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer.
func (s *WriterSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// SliceSink collects solutions in memory.
type SliceSink struct {
	mu        sync.Mutex
	solutions []Solution
}

func (s *SliceSink) Emit(sol Solution) error {
	s.mu.Lock()
	s.solutions = append(s.solutions, sol)
	s.mu.Unlock()
	return nil
}

// Solutions returns a copy of everything collected so far.
func (s *SliceSink) Solutions() []Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Solution, len(s.solutions))
	copy(out, s.solutions)
	return out
}

// CountingSink counts solutions before handing them to Next, if any.
type CountingSink struct {
	Next Sink

	n atomic.Int64
}

func (s *CountingSink) Emit(sol Solution) error {
	s.n.Add(1)
	if s.Next == nil {
		return nil
	}
	return s.Next.Emit(sol)
}

func (s *CountingSink) Count() int64 {
	return s.n.Load()
}
