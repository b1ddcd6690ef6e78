package starling

// Animatable is anything a Juggler can advance. AdvanceTime receives the
// elapsed time since the previous tick, in seconds.
type Animatable interface {
	AdvanceTime(dt float64)
}

// removeEmitter is implemented by animatables that can ask the juggler
// they currently live in to drop them (a completed Tween, for instance).
// The Juggler connects to this signal on Add and disconnects on Remove.
type removeEmitter interface {
	RemoveRequested() *Signal
}

// Signal is a minimal publish mechanism: a listener list with stable
// connection handles. Connect during Emit is safe; the new listener is not
// invoked until the next Emit.
type Signal struct {
	listeners []signalConn
	nextID    int
}

type signalConn struct {
	id int
	fn func(sender Animatable)
}

// Connect registers fn and returns a handle for Disconnect.
func (s *Signal) Connect(fn func(sender Animatable)) int {
	s.nextID++
	s.listeners = append(s.listeners, signalConn{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes the listener registered under the given handle.
// Unknown handles are ignored.
func (s *Signal) Disconnect(id int) {
	for i, conn := range s.listeners {
		if conn.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Emit invokes every listener registered before the call, in connection
// order. Listeners may connect or disconnect freely during dispatch: the
// listener list is snapshotted first, and entries disconnected by an
// earlier listener are skipped.
func (s *Signal) Emit(sender Animatable) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := append([]signalConn(nil), s.listeners...)
	for _, conn := range snapshot {
		if s.connected(conn.id) {
			conn.fn(sender)
		}
	}
}

func (s *Signal) connected(id int) bool {
	for _, conn := range s.listeners {
		if conn.id == id {
			return true
		}
	}
	return false
}

// Clear drops all listeners.
func (s *Signal) Clear() {
	s.listeners = s.listeners[:0]
}
