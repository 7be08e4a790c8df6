// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model holds the read-only simulation Model and the mutable
// per-step State. Model is built once by an external model builder and
// never mutated during a step; State comes in an input and an output
// instance per step.
package model

import "github.com/cpmech/dynafem/spatial"

// Model is the immutable description of all simulation primitives and
// their material/constraint parameters. It is shared read-only across
// the goroutines of a kernel launch.
type Model struct {

	// particles
	ParticleCount   int
	ParticleMass    []float64
	ParticleInvMass []float64
	Gravity         spatial.Vec3

	// springs
	SpringCount     int
	SpringIndices   [][2]int
	SpringRestLen   []float64
	SpringStiffness []float64
	SpringDamping   []float64

	// triangles
	TriCount            int
	TriIndices          [][3]int
	TriPoses            []spatial.Mat22
	TriActivations      []float64
	TriKe, TriKa, TriKd float64
	TriDrag, TriLift    float64
	EnableTriCollisions bool

	// bending edges: (opposite i, opposite j, shared k, shared l)
	EdgeCount      int
	EdgeIndices    [][4]int
	EdgeRestAngle  []float64
	EdgeKe, EdgeKd float64

	// tetrahedra
	TetCount       int
	TetIndices     [][4]int
	TetPoses       []spatial.Mat33
	TetActivations []float64
	TetMaterials   [][3]float64 // mu, lambda, damping

	// rigid bodies
	BodyCount      int
	BodyCom        []spatial.Vec3
	BodyMass       []float64
	BodyInertia    []spatial.Mat33
	BodyInvMass    []float64
	BodyInvInertia []spatial.Mat33

	// AngularDamping is the body-integration angular damping
	// coefficient, applied as w *= 1 - AngularDamping*dt each step.
	AngularDamping float64

	// joints
	JointCount                       int
	JointType                        []JointType
	JointParent                      []int // -1 => world
	JointXp, JointXc                 []spatial.Transform
	JointAxis                        []spatial.Vec3
	JointTarget, JointAct            []float64
	JointTargetKe, JointTargetKd     []float64
	JointLimitLower, JointLimitUpper []float64
	JointLimitKe, JointLimitKd       []float64

	// muscles (CSR layout: MuscleStart has MuscleCount+1 entries)
	MuscleCount      int
	MuscleStart      []int
	MuscleLinks      []int
	MusclePoints     []spatial.Vec3
	MuscleParams     [][]float64
	MuscleActivation []float64

	// contacts
	ShapeCount      int
	ShapeMaterials  [][4]float64 // ke, kd, kf, mu
	Ground          bool
	GroundPlane     [4]float64 // nx,ny,nz,d
	ContactCount    int
	ContactBody0    []int
	ContactPoint0   []spatial.Vec3
	ContactDist     []float64
	ContactMaterial []int

	// soft contact (particle <-> body)
	SoftContactMax      int
	SoftContactCount    int
	SoftContactParticle []int
	SoftContactBody     []int
	SoftContactBodyPos  []spatial.Vec3
	SoftContactBodyVel  []spatial.Vec3
	SoftContactNormal   []spatial.Vec3
	SoftContactKe       float64
	SoftContactKd       float64
	SoftContactKf       float64
	SoftContactMu       float64
	SoftContactDistance float64
}

// New returns a zero-valued Model with the default angular damping.
func New() *Model {
	return &Model{AngularDamping: 0.1}
}
