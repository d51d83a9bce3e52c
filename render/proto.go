package render

import (
	"io"

	"github.com/beka-birhanu/rumba/simulation"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoFrames streams each snapshot as a size-delimited protobuf Struct.
type ProtoFrames struct {
	w io.Writer
}

var _ Renderer = (*ProtoFrames)(nil)

func NewProtoFrames(w io.Writer) *ProtoFrames {
	return &ProtoFrames{w: w}
}

func (p *ProtoFrames) Push(s simulation.Snapshot) error {
	frame, err := EncodeFrame(s)
	if err != nil {
		return err
	}
	_, err = protodelim.MarshalTo(p.w, frame)
	return err
}

func (p *ProtoFrames) Flush() error {
	return nil
}

// EncodeFrame converts a snapshot to a structpb.Struct.
func EncodeFrame(s simulation.Snapshot) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"step": s.Step,
		"size": map[string]any{
			"rows": s.Size.Rows,
			"cols": s.Size.Cols,
		},
		"position": map[string]any{
			"row": s.Position.Row,
			"col": s.Position.Col,
		},
		"dirt":    positionsToAny(s.Dirt),
		"cleaned": positionsToAny(s.Cleaned),
	})
}
