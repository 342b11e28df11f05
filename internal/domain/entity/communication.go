package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunicationChannel enumerates the message channels the platform records.
type CommunicationChannel string

const (
	ChannelWhatsApp CommunicationChannel = "WHATSAPP"
	ChannelEmail    CommunicationChannel = "EMAIL"
	ChannelSMS      CommunicationChannel = "SMS"
	ChannelPhone    CommunicationChannel = "PHONE"
)

// Valid reports whether the value is a known channel.
func (c CommunicationChannel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelEmail, ChannelSMS, ChannelPhone:
		return true
	}

	return false
}

// CommunicationDirection marks a message as inbound or outbound.
type CommunicationDirection string

const (
	DirectionInbound  CommunicationDirection = "INBOUND"
	DirectionOutbound CommunicationDirection = "OUTBOUND"
)

// Valid reports whether the value is a known direction.
func (d CommunicationDirection) Valid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// Communication is one append-only log entry of a message exchanged with a
// customer, optionally linked to the quotation or order it concerns.
type Communication struct {
	ID                uuid.UUID              `json:"id"`
	CustomerID        uuid.UUID              `json:"customer_id"`
	QuotationID       *uuid.UUID             `json:"quotation_id,omitempty"`
	OrderID           *uuid.UUID             `json:"order_id,omitempty"`
	Channel           CommunicationChannel   `json:"channel"`
	Direction         CommunicationDirection `json:"direction"`
	Content           string                 `json:"content"`
	ExternalMessageID *string                `json:"external_message_id,omitempty"`
	RecordedBy        *uuid.UUID             `json:"recorded_by,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}
