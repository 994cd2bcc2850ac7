package game

import (
	"fmt"

	"github.com/gammazero/deque"
)

type CellAction struct {
	Row, Col int
	Action   Action
}

func (action CellAction) String() string {
	return fmt.Sprintf("%s(%d, %d)", action.Action, action.Row, action.Col)
}

// InputQueue buffers the cell actions produced between two frames. The zero
// value is an empty queue.
type InputQueue struct {
	actions deque.Deque
}

func (queue *InputQueue) Push(action CellAction) {
	queue.actions.PushBack(action)
}

func (queue *InputQueue) Len() int {
	return queue.actions.Len()
}

// Drain applies every queued action to session, oldest first, and returns how
// many of them changed the board. Rejected actions are dropped.
func (queue *InputQueue) Drain(session *Session) int {
	numChanged := 0
	for queue.actions.Len() > 0 {
		action := queue.actions.PopFront().(CellAction)
		if changed, _ := session.apply(action); changed {
			numChanged++
		}
	}
	return numChanged
}
