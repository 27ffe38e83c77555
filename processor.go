package fourcc

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag holding a field's expected code.
const tagName = "fourcc"

func init() {
	sentinel.Tag(tagName)
}

var codeType = reflect.TypeFor[Code]()

// Processor decodes and encodes values of T whose Code fields carry an
// expected value in a `fourcc:"..."` struct tag:
//
//	type WaveHeader struct {
//	    Chunk  fourcc.Code `json:"chunk" fourcc:"RIFF"`
//	    Size   uint32      `json:"size"`
//	    Format fourcc.Code `json:"format" fourcc:"WAVE"`
//	}
//
// Decode rejects documents whose tagged fields differ from their tags.
// Encode fills the tagged fields in before marshaling.
//
// Field plans are built once when the processor is created and are
// immutable afterwards, so a Processor is safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec    Codec
	fields   []codeFieldPlan
	typeName string
}

// codeFieldPlan describes one tagged field.
type codeFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	want       Code   // parsed tag literal
	ptrIndices []int  // indices where pointer dereference is needed
}

// NewProcessor creates a Processor for type T using codec.
//
// Every tag literal is validated with Parse. A bad literal, or a tag on a
// field that is not a Code, is reported as a *ConfigError wrapping
// ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	meta := sentinel.Scan[T]()

	p := &Processor[T]{
		codec:    codec,
		typeName: meta.TypeName,
	}
	path := map[reflect.Type]bool{reflect.TypeFor[T](): true}
	if err := buildFieldPlans(&p.fields, meta, nil, nil, "", path); err != nil {
		return nil, err
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), p.typeName)
	return p, nil
}

// Fields returns the number of tagged fields the processor checks.
func (p *Processor[T]) Fields() int {
	return len(p.fields)
}

// buildFieldPlans recursively collects tagged fields, descending into nested
// structs and pointers to structs. path holds the struct types being walked;
// a field leading back to one of them is not followed, so recursive types
// such as chunk trees only check their outermost level.
func buildFieldPlans(plans *[]codeFieldPlan, meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string, path map[reflect.Type]bool) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		literal, tagged := field.Tags[tagName]

		// Handle nested structs
		if !tagged && field.Kind == sentinel.KindStruct {
			if path[field.ReflectType] {
				continue
			}
			if nested := scanNestedType(field.ReflectType); nested != nil {
				path[field.ReflectType] = true
				err := buildFieldPlans(plans, *nested, fullIndex, ptrIndices, fullName, path)
				delete(path, field.ReflectType)
				if err != nil {
					return err
				}
			}
			continue
		}

		// Handle pointer to struct
		if !tagged && field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			elem := field.ReflectType.Elem()
			if path[elem] {
				continue
			}
			if nested := scanNestedType(elem); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				path[elem] = true
				err := buildFieldPlans(plans, *nested, fullIndex, newPtrIndices, fullName, path)
				delete(path, elem)
				if err != nil {
					return err
				}
			}
			continue
		}

		if !tagged {
			continue
		}

		if field.ReflectType != codeType {
			return newConfigError(ErrInvalidTag, fullName, literal, nil)
		}
		want, err := Parse(literal)
		if err != nil {
			return newConfigError(ErrInvalidTag, fullName, literal, err)
		}

		*plans = append(*plans, codeFieldPlan{
			index:      fullIndex,
			name:       fullName,
			want:       want,
			ptrIndices: ptrIndices,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct || rt == codeType {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        make(map[string]string),
		}
		if val, ok := sf.Tag.Lookup(tagName); ok {
			fm.Tags[tagName] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// Verify checks every tagged field of obj against its tag. The first
// difference is returned as a *MismatchError. Tagged fields behind a nil
// pointer are skipped.
func (p *Processor[T]) Verify(obj *T) error {
	if obj == nil {
		return nil
	}
	if v, ok := any(obj).(Verifiable); ok {
		return v.VerifyCodes()
	}

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.fields {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}
		if got := Code(field.Uint()); got != plan.want {
			return &MismatchError{Field: plan.name, Want: plan.want, Got: got}
		}
	}
	return nil
}

// Stamp writes the expected code into every tagged field of obj. Tagged
// fields behind a nil pointer are left alone.
func (p *Processor[T]) Stamp(obj *T) {
	if obj == nil {
		return
	}
	if s, ok := any(obj).(Stampable); ok {
		s.StampCodes()
		return
	}

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.fields {
		field, ok := getField(rv, plan)
		if !ok || !field.CanSet() {
			continue
		}
		field.SetUint(uint64(plan.want))
	}
}

// Decode unmarshals data and verifies the tagged fields.
func (p *Processor[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), len(p.fields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if err := p.Verify(&obj); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

// Encode stamps the tagged fields of a clone of obj and marshals it.
// obj itself is not modified.
func (p *Processor[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.fields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.codec.Marshal(nil)
		if retErr != nil {
			retErr = newCodecError(ErrMarshal, retErr)
		}
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()
	p.Stamp(&clone)

	data, err := p.codec.Marshal(&clone)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	retData = data
	return retData, nil
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan codeFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
