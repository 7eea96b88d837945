// internal/export/slots.go
package export

// Printer status block layout constants.
// These values define the register protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerPrinter is the fixed number of registers per printer.
const SlotsPerPrinter = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the printer health state.
const SlotHealthCode = 0

// SlotErrorCode holds the current error category code.
const SlotErrorCode = 1

// SlotOfflineFlag holds 1 while the printer is offline.
const SlotOfflineFlag = 2

// ---- RESERVED RANGE ----

// Slots 3-10 are reserved for future use.
const SlotReservedStart = 3
const SlotReservedEnd = 10

// ---- PRINTER NAME ----

// SlotNameStart is the first register used for the printer name.
// The name is always placed at the END of the status block.
const SlotNameStart = 11

// SlotNameSlots is the number of registers reserved for the printer name.
const SlotNameSlots = 8

// ---- LIMITS ----

// NameMaxChars is the maximum number of ASCII characters stored for the
// printer name.
const NameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a reachable, working printer.
const HealthOK uint16 = 1

// HealthError represents a printer in an error condition.
const HealthError uint16 = 2

// HealthOffline represents an unreachable printer.
const HealthOffline uint16 = 3
