package structhash

import (
	"bytes"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const maxPooledBuf = 64 << 10

var (
	keyerType        = reflect.TypeFor[Keyer]()
	undefinedType    = reflect.TypeFor[undefined]()
	timeType         = reflect.TypeFor[time.Time]()
	anySliceType     = reflect.TypeFor[[]any]()
	stringAnyMapType = reflect.TypeFor[map[string]any]()
)

// visit is one pointer-like value on the current descent path. Slices also
// carry their length, so a prefix sharing its parent's backing array is not
// taken for the parent.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

type encoder struct {
	buf  []byte
	path []visit
}

var encoderPool = sync.Pool{
	New: func() any {
		return &encoder{buf: make([]byte, 0, 256)}
	},
}

func getEncoder() *encoder {
	return encoderPool.Get().(*encoder)
}

func putEncoder(e *encoder) {
	if cap(e.buf) > maxPooledBuf {
		return
	}
	e.buf = e.buf[:0]
	e.path = e.path[:0]
	encoderPool.Put(e)
}

func (e *encoder) encode(v any) {
	switch x := v.(type) {
	case nil:
		e.buf = append(e.buf, 'n', ';')
	case undefined:
		e.buf = append(e.buf, 'u', ';')
	case bool:
		e.bool(x)
	case int:
		e.int(int64(x))
	case int8:
		e.int(int64(x))
	case int16:
		e.int(int64(x))
	case int32:
		e.int(int64(x))
	case int64:
		e.int(x)
	case uint:
		e.uint(uint64(x))
	case uint8:
		e.uint(uint64(x))
	case uint16:
		e.uint(uint64(x))
	case uint32:
		e.uint(uint64(x))
	case uint64:
		e.uint(x)
	case uintptr:
		e.uint(uint64(x))
	case float32:
		e.float(float64(x))
	case float64:
		e.float(x)
	case string:
		e.string('s', x)
	case []byte:
		e.string('y', string(x))
	case []any:
		if len(x) == 0 {
			e.encodeSeq(x)
			return
		}
		if !e.enter(reflect.ValueOf(v).Pointer(), len(x), anySliceType) {
			return
		}
		e.encodeSeq(x)
		e.leave()
	case map[string]any:
		if len(x) == 0 {
			e.buf = append(e.buf, '{', '0', ';', '}')
			return
		}
		if !e.enter(reflect.ValueOf(v).Pointer(), 0, stringAnyMapType) {
			return
		}
		e.encodeStringMap(x)
		e.leave()
	case time.Time:
		e.time(x)
	case Keyer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			e.buf = append(e.buf, 'p', ';')
			return
		}
		e.string('k', x.HashKey())
	default:
		e.value(reflect.ValueOf(v))
	}
}

// enter pushes ptr onto the descent path. When ptr is already on the path it
// writes a back-reference instead and reports false.
func (e *encoder) enter(ptr uintptr, n int, typ reflect.Type) bool {
	for depth, p := range e.path {
		if p.ptr == ptr && p.len == n && p.typ == typ {
			e.buf = append(e.buf, 'r', ':')
			e.buf = strconv.AppendInt(e.buf, int64(depth), 10)
			e.buf = append(e.buf, ';')
			return false
		}
	}
	e.path = append(e.path, visit{ptr: ptr, len: n, typ: typ})
	return true
}

func (e *encoder) leave() {
	e.path = e.path[:len(e.path)-1]
}

func (e *encoder) bool(b bool) {
	if b {
		e.buf = append(e.buf, 'b', '1', ';')
		return
	}
	e.buf = append(e.buf, 'b', '0', ';')
}

func (e *encoder) int(i int64) {
	e.buf = append(e.buf, 'i', ':')
	e.buf = strconv.AppendInt(e.buf, i, 10)
	e.buf = append(e.buf, ';')
}

func (e *encoder) uint(u uint64) {
	e.buf = append(e.buf, 'q', ':')
	e.buf = strconv.AppendUint(e.buf, u, 10)
	e.buf = append(e.buf, ';')
}

func (e *encoder) float(f float64) {
	if math.IsNaN(f) {
		e.buf = append(e.buf, "d:NaN;"...)
		return
	}
	if f == 0 {
		// folds -0 into +0
		f = 0
	}
	e.buf = append(e.buf, 'd', ':')
	e.buf = strconv.AppendFloat(e.buf, f, 'g', -1, 64)
	e.buf = append(e.buf, ';')
}

func (e *encoder) complex(c complex128) {
	e.buf = append(e.buf, 'c', ':')
	e.buf = strconv.AppendFloat(e.buf, real(c), 'g', -1, 64)
	e.buf = append(e.buf, ',')
	e.buf = strconv.AppendFloat(e.buf, imag(c), 'g', -1, 64)
	e.buf = append(e.buf, ';')
}

// string writes a length-prefixed string leaf, so no escaping is needed.
func (e *encoder) string(tag byte, s string) {
	e.buf = append(e.buf, tag)
	e.buf = strconv.AppendInt(e.buf, int64(len(s)), 10)
	e.buf = append(e.buf, ':')
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, ';')
}

func (e *encoder) time(t time.Time) {
	e.buf = append(e.buf, 't', ':')
	e.buf = strconv.AppendInt(e.buf, t.Unix(), 10)
	e.buf = append(e.buf, '.')
	e.buf = strconv.AppendInt(e.buf, int64(t.Nanosecond()), 10)
	e.buf = append(e.buf, ';')
}

func (e *encoder) openSeq(n int) {
	e.buf = append(e.buf, '[')
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
	e.buf = append(e.buf, ';')
}

func (e *encoder) openMap(n int) {
	e.buf = append(e.buf, '{')
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
	e.buf = append(e.buf, ';')
}

func (e *encoder) encodeSeq(s []any) {
	e.openSeq(len(s))
	for _, v := range s {
		e.encode(v)
	}
	e.buf = append(e.buf, ']')
}

func (e *encoder) encodeStringMap(m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareStringKeys)

	e.openMap(len(m))
	for _, k := range keys {
		e.string('s', k)
		e.buf = append(e.buf, '=')
		e.encode(m[k])
		e.buf = append(e.buf, ',')
	}
	e.buf = append(e.buf, '}')
}

// compareStringKeys orders strings the way their encoded leaves compare, so
// string-keyed maps sort alike on the fast path and the reflect path.
func compareStringKeys(a, b string) int {
	if len(a) != len(b) {
		var pa, pb [24]byte
		return bytes.Compare(
			append(strconv.AppendInt(pa[:0], int64(len(a)), 10), ':'),
			append(strconv.AppendInt(pb[:0], int64(len(b)), 10), ':'),
		)
	}
	return strings.Compare(a, b)
}

func (e *encoder) value(v reflect.Value) {
	if !v.IsValid() {
		e.buf = append(e.buf, 'n', ';')
		return
	}

	t := v.Type()
	if t == undefinedType {
		e.buf = append(e.buf, 'u', ';')
		return
	}
	if v.CanInterface() {
		if t == timeType {
			e.time(v.Interface().(time.Time))
			return
		}
		if t.Implements(keyerType) {
			switch {
			case v.Kind() == reflect.Interface && v.IsNil():
				e.buf = append(e.buf, 'n', ';')
				return
			case v.Kind() == reflect.Pointer && v.IsNil():
				e.buf = append(e.buf, 'p', ';')
				return
			}
			e.string('k', v.Interface().(Keyer).HashKey())
			return
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		e.bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		e.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		e.complex(v.Complex())
	case reflect.String:
		e.string('s', v.String())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			e.string('y', string(v.Bytes()))
			return
		}
		if v.Len() == 0 {
			e.openSeq(0)
			e.buf = append(e.buf, ']')
			return
		}
		if !e.enter(v.Pointer(), v.Len(), t) {
			return
		}
		e.seqValue(v)
		e.leave()
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			e.byteArray(v)
			return
		}
		e.seqValue(v)
	case reflect.Map:
		if v.Len() == 0 {
			e.buf = append(e.buf, '{', '0', ';', '}')
			return
		}
		if !e.enter(v.Pointer(), 0, t) {
			return
		}
		e.mapValue(v)
		e.leave()
	case reflect.Struct:
		e.structValue(v)
	case reflect.Pointer:
		if v.IsNil() {
			e.buf = append(e.buf, 'p', ';')
			return
		}
		if !e.enter(v.Pointer(), 0, t) {
			return
		}
		e.value(v.Elem())
		e.leave()
	case reflect.Interface:
		if v.IsNil() {
			e.buf = append(e.buf, 'n', ';')
			return
		}
		e.value(v.Elem())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		e.buf = append(e.buf, 'x', ':')
		e.buf = strconv.AppendUint(e.buf, uint64(v.Pointer()), 16)
		e.buf = append(e.buf, ';')
	}
}

func (e *encoder) byteArray(v reflect.Value) {
	n := v.Len()
	e.buf = append(e.buf, 'y')
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
	e.buf = append(e.buf, ':')
	for i := range n {
		e.buf = append(e.buf, byte(v.Index(i).Uint()))
	}
	e.buf = append(e.buf, ';')
}

func (e *encoder) seqValue(v reflect.Value) {
	n := v.Len()
	e.openSeq(n)
	for i := range n {
		e.value(v.Index(i))
	}
	e.buf = append(e.buf, ']')
}

// mapEntry locates one encoded key and its encoded value in a scratch buffer.
type mapEntry struct {
	key, val [2]int
}

// mapValue encodes every entry on a scratch encoder first, then writes the
// entries ordered by encoded key. Distinct keys may encode alike (pointers to
// equal values), so ties are broken by the encoded value.
func (e *encoder) mapValue(v reflect.Value) {
	se := getEncoder()
	defer putEncoder(se)
	se.path = append(se.path, e.path...)

	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var en mapEntry
		en.key[0] = len(se.buf)
		se.value(iter.Key())
		en.key[1] = len(se.buf)
		se.value(iter.Value())
		en.val[1] = len(se.buf)
		en.val[0] = en.key[1]
		entries = append(entries, en)
	}
	slices.SortFunc(entries, func(a, b mapEntry) int {
		if c := bytes.Compare(se.span(a.key), se.span(b.key)); c != 0 {
			return c
		}
		return bytes.Compare(se.span(a.val), se.span(b.val))
	})

	e.openMap(len(entries))
	for _, en := range entries {
		e.buf = append(e.buf, se.span(en.key)...)
		e.buf = append(e.buf, '=')
		e.buf = append(e.buf, se.span(en.val)...)
		e.buf = append(e.buf, ',')
	}
	e.buf = append(e.buf, '}')
}

func (e *encoder) span(s [2]int) []byte {
	return e.buf[s[0]:s[1]]
}

type field struct {
	name  string
	index int
}

// structFields caches name-sorted fields per struct type.
var structFields sync.Map

func fieldsOf(t reflect.Type) []field {
	if fs, ok := structFields.Load(t); ok {
		return fs.([]field)
	}
	fs := make([]field, t.NumField())
	for i := range fs {
		fs[i] = field{name: t.Field(i).Name, index: i}
	}
	slices.SortStableFunc(fs, func(a, b field) int {
		return compareStringKeys(a.name, b.name)
	})
	actual, _ := structFields.LoadOrStore(t, fs)
	return actual.([]field)
}

// structValue encodes a struct as a mapping from field name to value.
func (e *encoder) structValue(v reflect.Value) {
	fs := fieldsOf(v.Type())
	e.openMap(len(fs))
	for _, f := range fs {
		e.string('s', f.name)
		e.buf = append(e.buf, '=')
		e.value(v.Field(f.index))
		e.buf = append(e.buf, ',')
	}
	e.buf = append(e.buf, '}')
}
