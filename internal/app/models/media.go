package models

// Capability names a host device feature the patient app depends on.
type Capability string

const (
	CapabilityCamera            Capability = "camera"
	CapabilityMicrophone        Capability = "microphone"
	CapabilitySpeechRecognition Capability = "speech_recognition"
)

type CapabilityStatus string

const (
	CapabilityAvailable        CapabilityStatus = "available"
	CapabilityUnavailable      CapabilityStatus = "unavailable"
	CapabilityPermissionDenied CapabilityStatus = "permission_denied"
)

// CapabilityFor maps a consultation device to the capability it needs.
// Screen share is not gated.
func CapabilityFor(device MediaDevice) (Capability, bool) {
	switch device {
	case MediaDeviceVideo:
		return CapabilityCamera, true
	case MediaDeviceAudio:
		return CapabilityMicrophone, true
	}
	return "", false
}
