package game

// Director plays the game in place of a human, by queueing cell actions
type Director interface {
	/**
	 * Queue the next action(s) for session; nothing is queued once the game is over
	 */
	Act(session *Session, queue *InputQueue)
}
