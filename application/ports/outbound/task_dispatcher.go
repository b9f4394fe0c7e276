package outbound

// TaskDispatcher runs tasks on a bounded pool. *ants.Pool satisfies it.
type TaskDispatcher interface {
	Submit(task func()) error
}
