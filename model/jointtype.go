// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// JointType enumerates the supported joint kinds.
type JointType int

const (
	JointPrismatic JointType = iota
	JointRevolute
	JointBall
	JointFixed
	JointFree
)

// String names the joint type, for logging.
func (j JointType) String() string {
	switch j {
	case JointPrismatic:
		return "prismatic"
	case JointRevolute:
		return "revolute"
	case JointBall:
		return "ball"
	case JointFixed:
		return "fixed"
	case JointFree:
		return "free"
	}
	return "unknown"
}

// Valid reports whether j is one of the five known joint kinds.
func (j JointType) Valid() bool { return j >= JointPrismatic && j <= JointFree }
