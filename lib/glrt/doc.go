// Package glrt is the runtime used by bindings generated by glslbind.
//
// It wraps the handful of OpenGL objects a generated binding needs: a
// linked shader program, typed vertex buffers, vertex arrays assembled from
// those buffers, 2D textures, and the uniform kinds a binding uploads
// through ShaderUniforms.
//
// All functions must be called on the thread that owns the current GL
// context.
package glrt
