package draft

import "fmt"

// XDataCode identifies the kind of value an extended data record carries.
type XDataCode int

// Extended data record codes.
const (
	// XDataString marks a string value.
	XDataString XDataCode = 1000
	// XDataControlString marks the "{" and "}" grouping markers.
	XDataControlString XDataCode = 1002
	// XDataBinary marks a chunk of binary data ([]byte).
	XDataBinary XDataCode = 1004
	// XDataHandle marks a database handle reference (string).
	XDataHandle XDataCode = 1005
	// XDataPoint marks a 3D point (Vector3).
	XDataPoint XDataCode = 1010
	// XDataReal marks a float64 value.
	XDataReal XDataCode = 1040
	// XDataDistance marks a float64 distance value.
	XDataDistance XDataCode = 1041
	// XDataScale marks a float64 scale factor.
	XDataScale XDataCode = 1042
	// XDataInt16 marks an int16 value.
	XDataInt16 XDataCode = 1070
	// XDataInt32 marks an int32 value.
	XDataInt32 XDataCode = 1071
)

// XDataRecord is a single code/value pair inside an application's
// extended data.
type XDataRecord struct {
	Code  XDataCode
	Value any
}

// validate checks that the record's value matches its code.
func (r XDataRecord) validate() error {
	ok := false
	switch r.Code {
	case XDataString, XDataControlString, XDataHandle:
		_, ok = r.Value.(string)
	case XDataBinary:
		_, ok = r.Value.([]byte)
	case XDataPoint:
		_, ok = r.Value.(Vector3)
	case XDataReal, XDataDistance, XDataScale:
		_, ok = r.Value.(float64)
	case XDataInt16:
		_, ok = r.Value.(int16)
	case XDataInt32:
		_, ok = r.Value.(int32)
	default:
		return fmt.Errorf("%w: extended data code %d", ErrOutOfRange, r.Code)
	}
	if !ok {
		return fmt.Errorf("%w: extended data value %T does not match code %d", ErrOutOfRange, r.Value, r.Code)
	}
	return nil
}

// clone copies the record, duplicating binary payloads so the copy never
// aliases the original.
func (r XDataRecord) clone() XDataRecord {
	if b, isBinary := r.Value.([]byte); isBinary {
		return XDataRecord{Code: r.Code, Value: append([]byte(nil), b...)}
	}
	return r
}

// XData is the extended data one application attached to an entity.
type XData struct {
	// ApplicationName identifies the registered application that owns
	// the records.
	ApplicationName string
	// Records holds the application's code/value pairs in order.
	Records []XDataRecord
}

// Clone creates a deep copy of the extended data.
func (x XData) Clone() XData {
	c := XData{ApplicationName: x.ApplicationName}
	if x.Records != nil {
		c.Records = make([]XDataRecord, len(x.Records))
		for i, r := range x.Records {
			c.Records[i] = r.clone()
		}
	}
	return c
}

// XDataCollection holds the extended data of an entity keyed by
// application name, preserving insertion order.
type XDataCollection struct {
	items []XData
}

// Add appends extended data to the collection after validating its
// records. When data for the same application is already present the new
// records are appended to the existing entry.
func (c *XDataCollection) Add(data XData) error {
	if data.ApplicationName == "" {
		return fmt.Errorf("%w: extended data application name", ErrNilValue)
	}
	for _, r := range data.Records {
		if err := r.validate(); err != nil {
			return err
		}
	}
	for i := range c.items {
		if c.items[i].ApplicationName == data.ApplicationName {
			for _, r := range data.Records {
				c.items[i].Records = append(c.items[i].Records, r.clone())
			}
			return nil
		}
	}
	c.items = append(c.items, data.Clone())
	return nil
}

// Get returns the extended data for the given application name.
func (c *XDataCollection) Get(appName string) (XData, bool) {
	for _, x := range c.items {
		if x.ApplicationName == appName {
			return x, true
		}
	}
	return XData{}, false
}

// Delete removes the extended data for the given application name and
// reports whether an entry was removed.
func (c *XDataCollection) Delete(appName string) bool {
	for i, x := range c.items {
		if x.ApplicationName == appName {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the application names in insertion order.
func (c *XDataCollection) Names() []string {
	names := make([]string, len(c.items))
	for i, x := range c.items {
		names[i] = x.ApplicationName
	}
	return names
}

// Len returns the number of applications with extended data.
func (c *XDataCollection) Len() int {
	return len(c.items)
}

// Clone creates a deep copy of the collection.
func (c *XDataCollection) Clone() XDataCollection {
	if len(c.items) == 0 {
		return XDataCollection{}
	}
	items := make([]XData, len(c.items))
	for i, x := range c.items {
		items[i] = x.Clone()
	}
	return XDataCollection{items: items}
}
