package model

import "github.com/dleeaw/my3dObject/engine/mesh"

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model. Without it the model
// takes the name of its first mesh.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMesh is an option builder that sets the initial mesh of the Model.
//
// Parameters:
//   - msh: the mesh to draw
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh option to a model
func WithMesh(msh *mesh.Mesh) ModelBuilderOption {
	return func(m *model) {
		m.mesh = msh
	}
}

// WithScale is an option builder that sets the uniform scale of the Model.
//
// Parameters:
//   - scale: the scale factor
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithScale(scale float32) ModelBuilderOption {
	return func(m *model) {
		m.scale = scale
	}
}

// WithShaded is an option builder that sets whether the Model is lit.
//
// Parameters:
//   - shaded: false for flat unlit shapes
//
// Returns:
//   - ModelBuilderOption: a function that applies the shaded option to a model
func WithShaded(shaded bool) ModelBuilderOption {
	return func(m *model) {
		m.shaded = shaded
	}
}
