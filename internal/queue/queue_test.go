package queue

import (
	"sync"
	"testing"
)

func TestBoundedFIFOSingleProducerConsumer(t *testing.T) {
	for _, capacity := range []int{1, 2, 8, 100} {
		capacity := capacity
		t.Run("", func(t *testing.T) {
			q := NewBounded[int](capacity)
			const n = 500

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < n; i++ {
					q.Enqueue(Payload(i))
				}
				q.Enqueue(EndOfStream[int]())
			}()

			var got []int
			for {
				msg := q.Dequeue()
				if msg.End {
					break
				}
				got = append(got, msg.Value)
			}
			wg.Wait()

			if len(got) != n {
				t.Fatalf("capacity=%d: got %d values, want %d", capacity, len(got), n)
			}
			for i, v := range got {
				if v != i {
					t.Fatalf("capacity=%d: out of order at %d: got %d, want %d", capacity, i, v, i)
				}
			}
		})
	}
}

func TestBoundedBlocksWhenFull(t *testing.T) {
	q := NewBounded[int](1)
	q.Enqueue(Payload(1))

	enqueued := make(chan struct{})
	go func() {
		q.Enqueue(Payload(2))
		close(enqueued)
	}()

	select {
	case <-enqueued:
		t.Fatal("enqueue on a full queue returned before a slot freed up")
	default:
	}

	if v := q.Dequeue(); v.Value != 1 {
		t.Fatalf("got %d, want 1", v.Value)
	}
	<-enqueued

	if v := q.Dequeue(); v.Value != 2 {
		t.Fatalf("got %d, want 2", v.Value)
	}
}

func TestBoundedCapacity(t *testing.T) {
	q := NewBounded[int](5)
	if got := q.Capacity(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestEndOfStreamAlwaysAdmitted(t *testing.T) {
	q := NewBounded[int](1)
	q.Enqueue(Payload(1))

	done := make(chan struct{})
	go func() {
		q.Enqueue(EndOfStream[int]())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("end-of-stream enqueued into a full queue without blocking")
	default:
	}

	q.Dequeue()
	<-done

	msg := q.Dequeue()
	if !msg.End {
		t.Fatal("expected end-of-stream message")
	}
}
