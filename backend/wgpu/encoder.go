//go:build !(js && wasm)

package wgpu

import (
	"fmt"

	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// CommandEncoder implements gpucore.CommandEncoder.
type CommandEncoder struct {
	encoder *wgpu.CommandEncoder
}

// BeginRenderPass starts a render pass over the given color attachments.
func (e *CommandEncoder) BeginRenderPass(desc *gpucore.RenderPassDescriptor) (gpucore.RenderPass, error) {
	attachments := make([]wgpu.RenderPassColorAttachment, 0, len(desc.ColorAttachments))
	for _, ca := range desc.ColorAttachments {
		v, ok := ca.View.(*TextureView)
		if !ok {
			return nil, fmt.Errorf("wgpu: begin render pass: %w", ErrWrongBackend)
		}
		attachments = append(attachments, wgpu.RenderPassColorAttachment{
			View:       v.view,
			LoadOp:     ca.LoadOp,
			StoreOp:    ca.StoreOp,
			ClearValue: ca.ClearValue,
		})
	}

	pass, err := e.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: attachments,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: begin render pass: %w", mapError(err))
	}
	return &RenderPass{pass: pass}, nil
}

// Finish completes recording.
func (e *CommandEncoder) Finish() (gpucore.CommandBuffer, error) {
	cb, err := e.encoder.Finish()
	if err != nil {
		return nil, fmt.Errorf("wgpu: finish: %w", mapError(err))
	}
	return &CommandBuffer{buffer: cb}, nil
}

// Discard abandons recording.
func (e *CommandEncoder) Discard() {
	e.encoder.DiscardEncoding()
}

// RenderPass implements gpucore.RenderPass.
type RenderPass struct {
	pass *wgpu.RenderPassEncoder
}

// End ends the pass.
func (p *RenderPass) End() error {
	return mapError(p.pass.End())
}

// CommandBuffer implements gpucore.CommandBuffer.
type CommandBuffer struct {
	buffer *wgpu.CommandBuffer
}

// Release frees a buffer that was never submitted.
func (c *CommandBuffer) Release() {
	c.buffer.Release()
}
