package business

import (
	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/value"
)

// Entity is a generic record of any table as the service sends it.
type Entity struct {
	ID        int64                   `json:"id" yaml:"id" cbor:"1,keyasint"`
	UUID      string                  `json:"uuid,omitempty" yaml:"uuid,omitempty" cbor:"2,keyasint,omitempty"`
	TableName string                  `json:"tableName" yaml:"tableName" cbor:"3,keyasint"`
	Values    map[string]*value.Value `json:"values,omitempty" yaml:"values,omitempty" cbor:"4,keyasint,omitempty"`
}

// Lookup is a reference record (id, uuid and display values).
type Lookup Entity

// NativeEntity is an Entity with its values decoded.
type NativeEntity struct {
	ID        int64          `json:"id,omitempty" yaml:"id,omitempty"`
	UUID      string         `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	TableName string         `json:"tableName,omitempty" yaml:"tableName,omitempty"`
	Values    map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// NativeEntityList is an Entity whose values are decoded into key-sorted pairs.
type NativeEntityList struct {
	ID        int64                 `json:"id,omitempty" yaml:"id,omitempty"`
	UUID      string                `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	TableName string                `json:"tableName,omitempty" yaml:"tableName,omitempty"`
	Values    []criteria.NamedValue `json:"values,omitempty" yaml:"values,omitempty"`
}

// Decoder decodes records with one builder so codec options apply to
// every value of the record.
type Decoder struct {
	Builder criteria.Builder
}

// DecodeEntity returns the zero shape for a nil entity.
func (d Decoder) DecodeEntity(e *Entity) NativeEntity {
	if e == nil {
		return NativeEntity{}
	}
	return NativeEntity{
		ID:        e.ID,
		UUID:      e.UUID,
		TableName: e.TableName,
		Values:    d.Builder.DecodeValuesMap(e.Values),
	}
}

func (d Decoder) DecodeEntityList(e *Entity) NativeEntityList {
	if e == nil {
		return NativeEntityList{}
	}
	return NativeEntityList{
		ID:        e.ID,
		UUID:      e.UUID,
		TableName: e.TableName,
		Values:    d.Builder.DecodeValuesList(e.Values),
	}
}

func (d Decoder) DecodeLookup(l *Lookup) NativeEntity {
	return d.DecodeEntity((*Entity)(l))
}

func DecodeEntity(e *Entity) NativeEntity { return Decoder{}.DecodeEntity(e) }
func DecodeLookup(l *Lookup) NativeEntity { return Decoder{}.DecodeLookup(l) }

func DecodeEntityList(e *Entity) NativeEntityList {
	return Decoder{}.DecodeEntityList(e)
}
