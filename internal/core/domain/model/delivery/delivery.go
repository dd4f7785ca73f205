package delivery

import (
	"errors"
	"time"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through one of the constructors.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the aggregate root for an order in transit: the moving entity
// tracked by the geofencing engine. It carries its current location, the
// zone the engine assigned it to (if any), the assigned courier (if any),
// and its lifecycle status.
//
// Invariants:
//   - The zone assignment is decided by the engine, never by the entity
//     itself; AssignZone/ClearZone are the only mutators.
//   - Location updates are rejected once the delivery reaches a terminal
//     status.
//   - Status transitions follow the machine defined on Status.
type Delivery struct {
	// id uniquely identifies the delivery
	id kernel.UUID

	// courierID is the assigned courier (nil when unassigned)
	courierID *kernel.UUID

	// zoneID is the engine-assigned delivery zone (nil when unassigned)
	zoneID *kernel.UUID

	// location is the last reported position
	location kernel.Coordinate

	// status is the current lifecycle state
	status Status

	// createdAt is when the delivery entered the system
	createdAt time.Time

	// deliveredAt is set when the delivery completes
	deliveredAt *time.Time

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a Delivery in Pending status at the given location.
func NewDelivery(id kernel.UUID, location kernel.Coordinate) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with its full
// state, bypassing the transition checks that apply to live mutations.
func RestoreDelivery(
	id kernel.UUID,
	courierID *kernel.UUID,
	zoneID *kernel.UUID,
	location kernel.Coordinate,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = status
	d.courierID = courierID
	d.zoneID = zoneID
	return d, nil
}

// Validate ensures the Delivery was created via a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Courier returns the assigned courier's ID, or nil when unassigned.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// Zone returns the engine-assigned zone ID, or nil when unassigned.
func (d *Delivery) Zone() *kernel.UUID {
	return d.zoneID
}

// Location returns the last reported position.
func (d *Delivery) Location() kernel.Coordinate {
	return d.location
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns when the delivery entered the system.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// DeliveredAt returns the completion time, or nil when not delivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Assign assigns the delivery to a courier, transitioning to Assigned.
// Reassignment while already Assigned is allowed.
func (d *Delivery) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.courierID = &courierID
	return nil
}

// Start marks the delivery as picked up and in transit.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Complete marks the delivery as delivered and records the completion time.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	d.status = newStatus
	d.deliveredAt = &now
	return nil
}

// Cancel abandons the delivery from any non-terminal status.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// MoveTo updates the delivery's location. Rejected once the delivery is in
// a terminal status, since a delivered or cancelled entity no longer moves.
func (d *Delivery) MoveTo(location kernel.Coordinate) error {
	if d.status.IsTerminal() {
		return errs.NewValueIsInvalidError("delivery is in a terminal status")
	}
	return d.setLocation(location)
}

// AssignZone records the zone the engine placed this delivery in.
func (d *Delivery) AssignZone(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	d.zoneID = &zoneID
	return nil
}

// ClearZone removes the zone assignment, recording that no zone currently
// covers the delivery's location.
func (d *Delivery) ClearZone() {
	d.zoneID = nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
