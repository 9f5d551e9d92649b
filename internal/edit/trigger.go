package edit

// TriggerLock disables the edit trigger of one item for the remainder of the
// interaction that opened the editor. The owner releases it from a follow-up
// task on the next turn of the event loop.
type TriggerLock struct {
	id string
}

// Lock disables the trigger for id, replacing any previous lock.
func (l *TriggerLock) Lock(id string) {
	l.id = id
}

// Locked reports whether the trigger for id is currently disabled.
func (l *TriggerLock) Locked(id string) bool {
	return l.id != "" && l.id == id
}

// Release re-enables the trigger.
func (l *TriggerLock) Release() {
	l.id = ""
}
