package ports

import "context"

type vertexContextKey struct{}

// ContextWithVertex attaches a vertex to the context so operations running
// under a recorded stage can report progress to it.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, or nil when
// the operation runs without telemetry (Progress treats nil as a no-op).
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexContextKey{}).(Vertex)
	return v
}
