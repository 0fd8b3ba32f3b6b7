package event

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}

func init() {
	RegisterType("EventNone", EventNone)

	RegisterType("EventEnter", EventEnter)
	RegisterType("EventOpenArtwork", EventOpenArtwork)
	RegisterType("EventCloseModal", EventCloseModal)
	RegisterType("EventOpenAvatar", EventOpenAvatar)
	RegisterType("EventCloseAvatar", EventCloseAvatar)
	RegisterType("EventTeleport", EventTeleport)

	RegisterType("EventCameraTeleport", EventCameraTeleport)

	RegisterType("EventPhaseChanged", EventPhaseChanged)
	RegisterType("EventProximityChanged", EventProximityChanged)
	RegisterType("EventCaptureChanged", EventCaptureChanged)

	RegisterType("EventRemoteConnect", EventRemoteConnect)
	RegisterType("EventRemoteDisconnect", EventRemoteDisconnect)
	RegisterType("EventRemoteTouch", EventRemoteTouch)
	RegisterType("EventRemoteKey", EventRemoteKey)
}
