package engine

import (
	_ "embed"

	"github.com/lixenwraith/museum/engine/fsm"
	"github.com/lixenwraith/museum/event"
)

//go:embed phases.yaml
var defaultPhaseGraph []byte

// newPhaseMachine registers the museum guards and actions and loads the graph
func newPhaseMachine(graphPath string) (*fsm.Machine[*Museum], error) {
	m := fsm.NewMachine[*Museum]()

	m.RegisterGuard("ArtworkKnown", func(mu *Museum, ev event.GameEvent) bool {
		p, ok := ev.Payload.(*event.ArtworkPayload)
		if !ok || p == nil {
			return false
		}
		_, found := mu.scene.Artwork(p.ArtworkID)
		return found
	})
	m.RegisterGuard("DestinationKnown", func(mu *Museum, ev event.GameEvent) bool {
		p, ok := ev.Payload.(*event.TeleportPayload)
		if !ok || p == nil {
			return false
		}
		_, found := mu.scene.Destination(p.Slot)
		return found
	})

	m.RegisterAction("ReleaseCapture", func(mu *Museum, _ event.GameEvent, _ any) {
		mu.view.Release()
	})
	m.RegisterAction("SelectArtwork", func(mu *Museum, ev event.GameEvent, _ any) {
		if p, ok := ev.Payload.(*event.ArtworkPayload); ok && p != nil {
			mu.openArtwork, _ = mu.scene.Artwork(p.ArtworkID)
		}
	})
	m.RegisterAction("ClearArtwork", func(mu *Museum, _ event.GameEvent, _ any) {
		mu.openArtwork = nil
	})
	m.RegisterAction("EmitEvent", func(mu *Museum, _ event.GameEvent, args any) {
		if a, ok := args.(*fsm.EmitEventArgs); ok {
			mu.publish(event.GameEvent{Type: a.Type})
		}
	})

	if err := fsm.LoadConfigAuto(m, graphPath, defaultPhaseGraph); err != nil {
		return nil, err
	}
	return m, nil
}
