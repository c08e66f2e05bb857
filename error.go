package uvc

import "errors"

var (
	ErrDeviceClosed                = errors.New("device closed")
	ErrControlInterfaceNotFound    = errors.New("control interface not found")
	ErrProcessingUnitNotFound      = errors.New("processing unit not found")
	ErrExtensionUnitNotFound       = errors.New("extension unit not found")
	ErrExtensionUnitNotInitialized = errors.New("extension unit not initialized")
	ErrControlNotSupported         = errors.New("control not supported")
	ErrShortTransfer               = errors.New("short control transfer")
)
