// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: provider.proto

package providerv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProviderService_Chat_FullMethodName             = "/warden.provider.v1.ProviderService/Chat"
	ProviderService_Transcribe_FullMethodName       = "/warden.provider.v1.ProviderService/Transcribe"
	ProviderService_ListAudioDevices_FullMethodName = "/warden.provider.v1.ProviderService/ListAudioDevices"
	ProviderService_CaptureAudio_FullMethodName     = "/warden.provider.v1.ProviderService/CaptureAudio"
)

// ProviderServiceClient is the client API for ProviderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProviderService is the out-of-process provider bridge: chat completion
// (streaming and non-streaming), speech-to-text, and audio capture. The Go
// side holds the connection and converts wire messages into typed values.
type ProviderServiceClient interface {
	// Chat streams the model's response: text deltas, tool-call chunks, then
	// a final Done message. Non-streaming callers drain the stream and keep
	// only the collected result.
	Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatResponse], error)
	// Transcribe recognizes one WAV chunk.
	Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error)
	// ListAudioDevices enumerates capture devices on the bridge host.
	ListAudioDevices(ctx context.Context, in *ListAudioDevicesRequest, opts ...grpc.CallOption) (*ListAudioDevicesResponse, error)
	// CaptureAudio streams fixed-duration WAV chunks from a device until the
	// client cancels.
	CaptureAudio(ctx context.Context, in *CaptureAudioRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AudioChunk], error)
}

type providerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProviderServiceClient(cc grpc.ClientConnInterface) ProviderServiceClient {
	return &providerServiceClient{cc}
}

func (c *providerServiceClient) Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ProviderService_ServiceDesc.Streams[0], ProviderService_Chat_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ChatRequest, ChatResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ProviderService_ChatClient = grpc.ServerStreamingClient[ChatResponse]

func (c *providerServiceClient) Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TranscribeResponse)
	err := c.cc.Invoke(ctx, ProviderService_Transcribe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) ListAudioDevices(ctx context.Context, in *ListAudioDevicesRequest, opts ...grpc.CallOption) (*ListAudioDevicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAudioDevicesResponse)
	err := c.cc.Invoke(ctx, ProviderService_ListAudioDevices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) CaptureAudio(ctx context.Context, in *CaptureAudioRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AudioChunk], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ProviderService_ServiceDesc.Streams[1], ProviderService_CaptureAudio_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[CaptureAudioRequest, AudioChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ProviderService_CaptureAudioClient = grpc.ServerStreamingClient[AudioChunk]

// ProviderServiceServer is the server API for ProviderService service.
// All implementations must embed UnimplementedProviderServiceServer
// for forward compatibility.
//
// ProviderService is the out-of-process provider bridge: chat completion
// (streaming and non-streaming), speech-to-text, and audio capture. The Go
// side holds the connection and converts wire messages into typed values.
type ProviderServiceServer interface {
	// Chat streams the model's response: text deltas, tool-call chunks, then
	// a final Done message. Non-streaming callers drain the stream and keep
	// only the collected result.
	Chat(*ChatRequest, grpc.ServerStreamingServer[ChatResponse]) error
	// Transcribe recognizes one WAV chunk.
	Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error)
	// ListAudioDevices enumerates capture devices on the bridge host.
	ListAudioDevices(context.Context, *ListAudioDevicesRequest) (*ListAudioDevicesResponse, error)
	// CaptureAudio streams fixed-duration WAV chunks from a device until the
	// client cancels.
	CaptureAudio(*CaptureAudioRequest, grpc.ServerStreamingServer[AudioChunk]) error
	mustEmbedUnimplementedProviderServiceServer()
}

// UnimplementedProviderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProviderServiceServer struct{}

func (UnimplementedProviderServiceServer) Chat(*ChatRequest, grpc.ServerStreamingServer[ChatResponse]) error {
	return status.Error(codes.Unimplemented, "method Chat not implemented")
}
func (UnimplementedProviderServiceServer) Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Transcribe not implemented")
}
func (UnimplementedProviderServiceServer) ListAudioDevices(context.Context, *ListAudioDevicesRequest) (*ListAudioDevicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAudioDevices not implemented")
}
func (UnimplementedProviderServiceServer) CaptureAudio(*CaptureAudioRequest, grpc.ServerStreamingServer[AudioChunk]) error {
	return status.Error(codes.Unimplemented, "method CaptureAudio not implemented")
}
func (UnimplementedProviderServiceServer) mustEmbedUnimplementedProviderServiceServer() {}
func (UnimplementedProviderServiceServer) testEmbeddedByValue()                         {}

// UnsafeProviderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProviderServiceServer will
// result in compilation errors.
type UnsafeProviderServiceServer interface {
	mustEmbedUnimplementedProviderServiceServer()
}

func RegisterProviderServiceServer(s grpc.ServiceRegistrar, srv ProviderServiceServer) {
	// If the following call panics, it indicates UnimplementedProviderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProviderService_ServiceDesc, srv)
}

func _ProviderService_Chat_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ChatRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProviderServiceServer).Chat(m, &grpc.GenericServerStream[ChatRequest, ChatResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ProviderService_ChatServer = grpc.ServerStreamingServer[ChatResponse]

func _ProviderService_Transcribe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TranscribeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).Transcribe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_Transcribe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).Transcribe(ctx, req.(*TranscribeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_ListAudioDevices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAudioDevicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).ListAudioDevices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_ListAudioDevices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).ListAudioDevices(ctx, req.(*ListAudioDevicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_CaptureAudio_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(CaptureAudioRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProviderServiceServer).CaptureAudio(m, &grpc.GenericServerStream[CaptureAudioRequest, AudioChunk]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ProviderService_CaptureAudioServer = grpc.ServerStreamingServer[AudioChunk]

// ProviderService_ServiceDesc is the grpc.ServiceDesc for ProviderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProviderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "warden.provider.v1.ProviderService",
	HandlerType: (*ProviderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Transcribe",
			Handler:    _ProviderService_Transcribe_Handler,
		},
		{
			MethodName: "ListAudioDevices",
			Handler:    _ProviderService_ListAudioDevices_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Chat",
			Handler:       _ProviderService_Chat_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "CaptureAudio",
			Handler:       _ProviderService_CaptureAudio_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "provider.proto",
}
