// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chain

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
)

// Logger is the leveled logger used by the builder and the middlewares.
//
// Notice: the dispatcher itself never logs.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewNopLogger returns a Logger discarding all the logs.
//
// Notice: the returned logger has also implemented the interface
// { Writer() io.Writer }, which returns ioutil.Discard.
func NewNopLogger() Logger { return nopLogger{} }

// NewLoggerFromStdlog converts stdlib log to Logger.
//
// If logger is nil, it is equal to NewNopLogger().
//
// Notice: the returned logger has also implemented the interface
// { Writer() io.Writer }.
func NewLoggerFromStdlog(logger *log.Logger) Logger {
	if logger == nil {
		return nopLogger{}
	}
	return stdlog{logger: logger}
}

// NewLoggerFromWriter returns a new logger by creating a new stdlib log.
//
// flags is log.LstdFlags|log.Lmicroseconds|log.Lshortfile by default.
func NewLoggerFromWriter(w io.Writer, prefix string, flags ...int) Logger {
	flag := log.LstdFlags | log.Lmicroseconds | log.Lshortfile
	if len(flags) > 0 {
		flag = flags[0]
	}
	return stdlog{logger: log.New(w, prefix, flag)}
}

type nopLogger struct{}

func (nopLogger) Writer() io.Writer             { return ioutil.Discard }
func (nopLogger) Tracef(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

type level uint8

const (
	levelTrace level = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

var levelTags = [...]string{
	levelTrace: "[T] ",
	levelDebug: "[D] ",
	levelInfo:  "[I] ",
	levelWarn:  "[W] ",
	levelError: "[E] ",
}

type stdlog struct {
	logger *log.Logger
}

func (l stdlog) Writer() io.Writer { return l.logger.Writer() }

// logf must be called by the level methods directly to keep the caller depth.
func (l stdlog) logf(lvl level, format string, args []interface{}) {
	msg := levelTags[lvl] + format
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.logger.Output(3, msg)
}

func (l stdlog) Tracef(format string, args ...interface{}) { l.logf(levelTrace, format, args) }
func (l stdlog) Debugf(format string, args ...interface{}) { l.logf(levelDebug, format, args) }
func (l stdlog) Infof(format string, args ...interface{})  { l.logf(levelInfo, format, args) }
func (l stdlog) Warnf(format string, args ...interface{})  { l.logf(levelWarn, format, args) }
func (l stdlog) Errorf(format string, args ...interface{}) { l.logf(levelError, format, args) }
