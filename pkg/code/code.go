package code

import (
	"fmt"
	"net/http"
)

// Code is a coded operation result. It carries a numeric code, a success
// flag and a bilingual message, plus optional response payload fields.
type Code struct {
	code   int
	status bool
	Lang   lang
	// data attached to the response
	data     any
	haveData bool
	// human readable details
	details     []string
	haveDetails bool
	// extra context string for operators
	context     string
	haveContext bool
}

var codes = map[int]string{}

// NewError registers an error code. Duplicate registration is a programming
// error and panics at init time.
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists, pick another one", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code.
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists, pick another one", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone creates a detached copy so payload setters do not mutate the
// package level singletons.
func (e *Code) Clone() *Code {
	return &Code{
		code:   e.code,
		status: e.status,
		Lang:   e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() any {
	return e.data
}

func (e *Code) Context() string {
	return e.context
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveContext() bool {
	return e.haveContext
}

func (e *Code) WithData(data any) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

func (e *Code) WithContext(context string) *Code {
	c := e.Clone()
	c.haveContext = true
	c.context = context
	return c
}

// Is reports whether target carries the same registered code, so payload
// copies created by WithData/WithDetails still match their origin through
// errors.Is.
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return e.code == t.code
}

func (e *Code) StatusCode() int {
	return http.StatusOK
}
