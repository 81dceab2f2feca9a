package runner

import "errors"

// ErrInputNotFound indicates the configured workbook does not exist
var ErrInputNotFound = errors.New("input workbook not found")

// ErrNoVehicleSheets indicates no sheet name contains the vehicle marker
var ErrNoVehicleSheets = errors.New("no vehicle sheets found")

// ErrVehicleFailed indicates at least one vehicle sheet could not be read or written
var ErrVehicleFailed = errors.New("one or more vehicles failed")
