package logsvc

import "github.com/trezcool/shule/core"

// NopLogger drops everything; meant for tests.
type NopLogger struct{}

var _ core.Logger = (*NopLogger)(nil)

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (NopLogger) Enable(bool)                        {}
func (NopLogger) Debug(string, ...interface{})       {}
func (NopLogger) Info(string, ...interface{})        {}
func (NopLogger) Warn(string, ...interface{})        {}
func (NopLogger) Error(string, ...interface{})       {}
func (NopLogger) Fatal(string, ...interface{})       {}
