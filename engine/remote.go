package engine

import (
	"log"

	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/status"
)

// EventTypes implements event.Handler for remote controller input
func (m *Museum) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRemoteConnect,
		event.EventRemoteDisconnect,
		event.EventRemoteTouch,
		event.EventRemoteKey,
	}
}

// HandleEvent applies remote controller input on the host goroutine
// Remote events pass through the same aggregator and gates as local input
func (m *Museum) HandleEvent(_ *status.Registry, ev event.GameEvent) {
	switch ev.Type {
	case event.EventRemoteConnect:
		if p, ok := ev.Payload.(*event.RemotePeerPayload); ok {
			m.statPeers.Add(1)
			log.Printf("remote controller connected: %s", p.SessionID)
		}

	case event.EventRemoteDisconnect:
		p, ok := ev.Payload.(*event.RemotePeerPayload)
		if !ok {
			return
		}
		m.statPeers.Add(-1)
		if m.remoteTouchOwner == p.SessionID {
			m.applyInput(input.Event{Type: input.EventTouchCancel})
			m.remoteTouchOwner = ""
		}
		m.releaseRemoteKeys(p.SessionID)
		log.Printf("remote controller disconnected: %s", p.SessionID)

	case event.EventRemoteTouch:
		p, ok := ev.Payload.(*event.RemoteTouchPayload)
		if !ok {
			return
		}
		m.applyRemoteTouch(p)

	case event.EventRemoteKey:
		p, ok := ev.Payload.(*event.RemoteKeyPayload)
		if !ok {
			return
		}
		k, known := input.KeyByName(p.Key)
		if !known {
			return
		}
		m.trackRemoteKey(p.SessionID, k, p.Down)
		t := input.EventKeyUp
		if p.Down {
			t = input.EventKeyDown
		}
		m.applyInput(input.Event{Type: t, Key: k})
	}
}

func (m *Museum) trackRemoteKey(session string, k input.Key, down bool) {
	held := m.remoteKeys[session]
	if !down {
		delete(held, k)
		if len(held) == 0 {
			delete(m.remoteKeys, session)
		}
		return
	}
	if held == nil {
		if m.remoteKeys == nil {
			m.remoteKeys = make(map[string]map[input.Key]struct{})
		}
		held = make(map[input.Key]struct{})
		m.remoteKeys[session] = held
	}
	held[k] = struct{}{}
}

// releaseRemoteKeys lifts every key a departed session left down
func (m *Museum) releaseRemoteKeys(session string) {
	for k := range m.remoteKeys[session] {
		m.applyInput(input.Event{Type: input.EventKeyUp, Key: k})
	}
	delete(m.remoteKeys, session)
}

func (m *Museum) applyRemoteTouch(p *event.RemoteTouchPayload) {
	// A second controller cannot steal a stick another session is driving
	if m.remoteTouchOwner != "" && m.remoteTouchOwner != p.SessionID {
		return
	}

	ev := input.Event{TouchID: p.TouchID, X: p.X, Y: p.Y, Touches: p.Active}
	switch p.Phase {
	case event.TouchStart:
		ev.Type = input.EventTouchStart
	case event.TouchMove:
		ev.Type = input.EventTouchMove
	case event.TouchEnd:
		ev.Type = input.EventTouchEnd
	case event.TouchCancel:
		ev.Type = input.EventTouchCancel
	default:
		return
	}
	// Local touches own the stick while no session does
	wasActive := m.state.Joystick.Active()
	if wasActive && m.remoteTouchOwner == "" {
		return
	}
	m.applyInput(ev)

	switch {
	case !m.state.Joystick.Active():
		m.remoteTouchOwner = ""
	case !wasActive:
		m.remoteTouchOwner = p.SessionID
	}
}
