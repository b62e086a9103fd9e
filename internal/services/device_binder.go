package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/essgate/internal/models"
)

type DeviceOutcome string

const (
	DeviceRegistered DeviceOutcome = "registered"
	DeviceConfirmed  DeviceOutcome = "confirmed"
)

type DeviceInfo struct {
	ID    string
	Model string
	Brand string
}

// DeviceBinder enforces one device per employee. The first login binds the
// device, later logins must present the same id until an administrator
// resets it.
type DeviceBinder struct {
	now func() time.Time
}

func NewDeviceBinder(now func() time.Time) *DeviceBinder {
	if now == nil {
		now = time.Now
	}
	return &DeviceBinder{now: now}
}

func (binder *DeviceBinder) Apply(ctx context.Context, employees EmployeeRepository, employee models.Employee, device DeviceInfo) (DeviceOutcome, error) {
	if employee.HasBoundDevice() {
		if *employee.DeviceID != device.ID {
			return "", ErrDeviceMismatch
		}
		return DeviceConfirmed, nil
	}

	bound, err := employees.BindDevice(ctx, employee.ID, models.DeviceBinding{
		DeviceID:     device.ID,
		Model:        device.Model,
		Brand:        device.Brand,
		RegisteredAt: binder.now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("bind device for %s: %w", employee.ID, err)
	}
	if bound {
		return DeviceRegistered, nil
	}

	// Lost the race for the first bind; the winner decides.
	current, err := lookupEmployeeByID(ctx, employees, employee.ID)
	if err != nil {
		return "", err
	}
	if !current.HasBoundDevice() {
		return "", fmt.Errorf("bind device for %s: no row updated", employee.ID)
	}
	if *current.DeviceID != device.ID {
		return "", ErrDeviceMismatch
	}
	return DeviceConfirmed, nil
}

// Reset clears the bound device unconditionally.
func (binder *DeviceBinder) Reset(ctx context.Context, employees EmployeeRepository, employeeID string) error {
	cleared, err := employees.ClearDevice(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("clear device for %s: %w", employeeID, err)
	}
	if !cleared {
		return ErrNoEmployeeRecord
	}
	return nil
}
