package datadevice

import (
	"os"

	"deedles.dev/wldnd/notify"
)

// OfferSink is the target client's end of an Offer.
type OfferSink interface {
	// Offer advertises a MIME type that the offer can be received
	// as.
	Offer(mimeType string)
}

// Offer is a single presentation of a Source to a specific client. A
// new Offer is created every time that a source is shown to a client.
//
// An Offer outlives its source. Once the source is destroyed, the
// offer's requests do nothing.
type Offer struct {
	source         *Source
	sourceListener *notify.Listener
	device         *Device
	sink           OfferSink
	destroyed      bool
}

// newOffer presents source to the client that owns device. The
// client is told about the new offer and about every MIME type that
// the source has at this moment, in order.
func newOffer(source *Source, device *Device) *Offer {
	offer := Offer{
		source: source,
		device: device,
	}
	offer.sourceListener = source.OnDestroy(func() {
		offer.source, offer.sourceListener = nil, nil
	})

	offer.sink = device.sink.DataOffer(&offer)
	for _, mimeType := range source.MimeTypes() {
		offer.sink.Offer(mimeType)
	}

	return &offer
}

// Source returns the source that the offer presents, or nil if it has
// been destroyed.
func (offer *Offer) Source() *Source {
	return offer.source
}

// Device returns the device that the offer was presented to.
func (offer *Offer) Device() *Device {
	return offer.device
}

// Sink returns the value that DeviceSink.DataOffer returned for the
// offer.
func (offer *Offer) Sink() OfferSink {
	return offer.sink
}

// Accept forwards a target's acceptance of mimeType to the source.
func (offer *Offer) Accept(serial uint32, mimeType string) {
	if offer.source == nil {
		return
	}
	offer.source.handler.Accept(serial, mimeType)
}

// Receive asks the source to write its data as mimeType to fd.
// Ownership of fd passes to the source. If there is no source, fd is
// closed.
func (offer *Offer) Receive(mimeType string, fd *os.File) {
	if offer.source == nil {
		fd.Close()
		return
	}
	offer.source.handler.Send(mimeType, fd)
}

// Destroy releases the offer.
func (offer *Offer) Destroy() {
	if offer.destroyed {
		return
	}
	offer.destroyed = true

	offer.sourceListener.Remove()
	offer.source, offer.sourceListener = nil, nil
}
