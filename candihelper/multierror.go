package candihelper

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type multiError struct {
	lock sync.Mutex
	keys []string
	errs map[string]string
}

// NewMultiError constructor
func NewMultiError() MultiError {
	return &multiError{errs: make(map[string]string)}
}

// Append error to multierror, nil error is ignored
func (m *multiError) Append(key string, err error) MultiError {
	if err == nil {
		return m
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.errs[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.errs[key] = err.Error()
	return m
}

// HasError check if err is exist
func (m *multiError) HasError() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.errs) != 0
}

// IsNil check if err is nil
func (m *multiError) IsNil() bool {
	return !m.HasError()
}

// Clear make empty list of errors
func (m *multiError) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.keys = nil
	m.errs = map[string]string{}
}

// ToMap return copy of error map
func (m *multiError) ToMap() map[string]string {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := make(map[string]string, len(m.errs))
	for k, v := range m.errs {
		res[k] = v
	}
	return res
}

// Merge from another multi error
func (m *multiError) Merge(e MultiError) MultiError {
	for k, v := range e.ToMap() {
		m.Append(k, errors.New(v))
	}
	return m
}

// Error implement error from multiError, keys are listed in append order
func (m *multiError) Error() string {
	m.lock.Lock()
	defer m.lock.Unlock()
	str := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		str = append(str, fmt.Sprintf("%s: %s", k, m.errs[k]))
	}
	return strings.Join(str, "\n")
}
