package librarypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified name of the library administration service.
const ServiceName = "library.LibraryService"

// Full method names, as seen by interceptors.
const (
	LibraryService_UserLogin_FullMethodName              = "/library.LibraryService/UserLogin"
	LibraryService_CreateBook_FullMethodName             = "/library.LibraryService/CreateBook"
	LibraryService_GetBook_FullMethodName                = "/library.LibraryService/GetBook"
	LibraryService_UpdateBookAvailability_FullMethodName = "/library.LibraryService/UpdateBookAvailability"
	LibraryService_DeleteBook_FullMethodName             = "/library.LibraryService/DeleteBook"
	LibraryService_SearchBooks_FullMethodName            = "/library.LibraryService/SearchBooks"
	LibraryService_GetAllUsers_FullMethodName            = "/library.LibraryService/GetAllUsers"
	LibraryService_GetUserDetail_FullMethodName          = "/library.LibraryService/GetUserDetail"
	LibraryService_DeleteUser_FullMethodName             = "/library.LibraryService/DeleteUser"
	LibraryService_CreateClient_FullMethodName           = "/library.LibraryService/CreateClient"
	LibraryService_GetClient_FullMethodName              = "/library.LibraryService/GetClient"
	LibraryService_GetAllClients_FullMethodName          = "/library.LibraryService/GetAllClients"
	LibraryService_UpdateClient_FullMethodName           = "/library.LibraryService/UpdateClient"
	LibraryService_DeleteClient_FullMethodName           = "/library.LibraryService/DeleteClient"
)

// LibraryServiceClient is the client API for the library administration service.
type LibraryServiceClient interface {
	UserLogin(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResult, error)
	CreateBook(ctx context.Context, in *CreateBookRequest, opts ...grpc.CallOption) (*StatusResult, error)
	GetBook(ctx context.Context, in *GetBookRequest, opts ...grpc.CallOption) (*Book, error)
	UpdateBookAvailability(ctx context.Context, in *UpdateBookRequest, opts ...grpc.CallOption) (*StatusResult, error)
	DeleteBook(ctx context.Context, in *DeleteBookRequest, opts ...grpc.CallOption) (*StatusResult, error)
	SearchBooks(ctx context.Context, in *SearchBooksRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Book], error)
	GetAllUsers(ctx context.Context, in *GetAllUsersRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error)
	GetUserDetail(ctx context.Context, in *GetUserDetailRequest, opts ...grpc.CallOption) (*User, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*StatusResult, error)
	CreateClient(ctx context.Context, in *CreateClientRequest, opts ...grpc.CallOption) (*StatusResult, error)
	GetClient(ctx context.Context, in *GetClientRequest, opts ...grpc.CallOption) (*Client, error)
	GetAllClients(ctx context.Context, in *GetAllClientsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Client], error)
	UpdateClient(ctx context.Context, in *UpdateClientRequest, opts ...grpc.CallOption) (*StatusResult, error)
	DeleteClient(ctx context.Context, in *DeleteClientRequest, opts ...grpc.CallOption) (*StatusResult, error)
}

type libraryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLibraryServiceClient creates a client that sends every call with the JSON codec.
func NewLibraryServiceClient(cc grpc.ClientConnInterface) LibraryServiceClient {
	return &libraryServiceClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *libraryServiceClient) UserLogin(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResult, error) {
	out := new(LoginResult)
	if err := c.cc.Invoke(ctx, LibraryService_UserLogin_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) CreateBook(ctx context.Context, in *CreateBookRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_CreateBook_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetBook(ctx context.Context, in *GetBookRequest, opts ...grpc.CallOption) (*Book, error) {
	out := new(Book)
	if err := c.cc.Invoke(ctx, LibraryService_GetBook_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) UpdateBookAvailability(ctx context.Context, in *UpdateBookRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_UpdateBookAvailability_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) DeleteBook(ctx context.Context, in *DeleteBookRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_DeleteBook_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) SearchBooks(ctx context.Context, in *SearchBooksRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Book], error) {
	stream, err := c.cc.NewStream(ctx, &LibraryService_ServiceDesc.Streams[0], LibraryService_SearchBooks_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SearchBooksRequest, Book]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// LibraryService_SearchBooksClient is the client side of the SearchBooks stream.
type LibraryService_SearchBooksClient = grpc.ServerStreamingClient[Book]

func (c *libraryServiceClient) GetAllUsers(ctx context.Context, in *GetAllUsersRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error) {
	stream, err := c.cc.NewStream(ctx, &LibraryService_ServiceDesc.Streams[1], LibraryService_GetAllUsers_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetAllUsersRequest, User]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// LibraryService_GetAllUsersClient is the client side of the GetAllUsers stream.
type LibraryService_GetAllUsersClient = grpc.ServerStreamingClient[User]

func (c *libraryServiceClient) GetUserDetail(ctx context.Context, in *GetUserDetailRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.cc.Invoke(ctx, LibraryService_GetUserDetail_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_DeleteUser_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) CreateClient(ctx context.Context, in *CreateClientRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_CreateClient_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetClient(ctx context.Context, in *GetClientRequest, opts ...grpc.CallOption) (*Client, error) {
	out := new(Client)
	if err := c.cc.Invoke(ctx, LibraryService_GetClient_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetAllClients(ctx context.Context, in *GetAllClientsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Client], error) {
	stream, err := c.cc.NewStream(ctx, &LibraryService_ServiceDesc.Streams[2], LibraryService_GetAllClients_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetAllClientsRequest, Client]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// LibraryService_GetAllClientsClient is the client side of the GetAllClients stream.
type LibraryService_GetAllClientsClient = grpc.ServerStreamingClient[Client]

func (c *libraryServiceClient) UpdateClient(ctx context.Context, in *UpdateClientRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_UpdateClient_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) DeleteClient(ctx context.Context, in *DeleteClientRequest, opts ...grpc.CallOption) (*StatusResult, error) {
	out := new(StatusResult)
	if err := c.cc.Invoke(ctx, LibraryService_DeleteClient_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// LibraryServiceServer is the server API for the library administration service.
// Implementations must embed UnimplementedLibraryServiceServer.
type LibraryServiceServer interface {
	UserLogin(context.Context, *LoginRequest) (*LoginResult, error)
	CreateBook(context.Context, *CreateBookRequest) (*StatusResult, error)
	GetBook(context.Context, *GetBookRequest) (*Book, error)
	UpdateBookAvailability(context.Context, *UpdateBookRequest) (*StatusResult, error)
	DeleteBook(context.Context, *DeleteBookRequest) (*StatusResult, error)
	SearchBooks(*SearchBooksRequest, grpc.ServerStreamingServer[Book]) error
	GetAllUsers(*GetAllUsersRequest, grpc.ServerStreamingServer[User]) error
	GetUserDetail(context.Context, *GetUserDetailRequest) (*User, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*StatusResult, error)
	CreateClient(context.Context, *CreateClientRequest) (*StatusResult, error)
	GetClient(context.Context, *GetClientRequest) (*Client, error)
	GetAllClients(*GetAllClientsRequest, grpc.ServerStreamingServer[Client]) error
	UpdateClient(context.Context, *UpdateClientRequest) (*StatusResult, error)
	DeleteClient(context.Context, *DeleteClientRequest) (*StatusResult, error)
	mustEmbedUnimplementedLibraryServiceServer()
}

// UnimplementedLibraryServiceServer answers every call with codes.Unimplemented.
// Embed it by value.
type UnimplementedLibraryServiceServer struct{}

func (UnimplementedLibraryServiceServer) UserLogin(context.Context, *LoginRequest) (*LoginResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UserLogin not implemented")
}

func (UnimplementedLibraryServiceServer) CreateBook(context.Context, *CreateBookRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBook not implemented")
}

func (UnimplementedLibraryServiceServer) GetBook(context.Context, *GetBookRequest) (*Book, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBook not implemented")
}

func (UnimplementedLibraryServiceServer) UpdateBookAvailability(context.Context, *UpdateBookRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateBookAvailability not implemented")
}

func (UnimplementedLibraryServiceServer) DeleteBook(context.Context, *DeleteBookRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBook not implemented")
}

func (UnimplementedLibraryServiceServer) SearchBooks(*SearchBooksRequest, grpc.ServerStreamingServer[Book]) error {
	return status.Errorf(codes.Unimplemented, "method SearchBooks not implemented")
}

func (UnimplementedLibraryServiceServer) GetAllUsers(*GetAllUsersRequest, grpc.ServerStreamingServer[User]) error {
	return status.Errorf(codes.Unimplemented, "method GetAllUsers not implemented")
}

func (UnimplementedLibraryServiceServer) GetUserDetail(context.Context, *GetUserDetailRequest) (*User, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserDetail not implemented")
}

func (UnimplementedLibraryServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteUser not implemented")
}

func (UnimplementedLibraryServiceServer) CreateClient(context.Context, *CreateClientRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateClient not implemented")
}

func (UnimplementedLibraryServiceServer) GetClient(context.Context, *GetClientRequest) (*Client, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClient not implemented")
}

func (UnimplementedLibraryServiceServer) GetAllClients(*GetAllClientsRequest, grpc.ServerStreamingServer[Client]) error {
	return status.Errorf(codes.Unimplemented, "method GetAllClients not implemented")
}

func (UnimplementedLibraryServiceServer) UpdateClient(context.Context, *UpdateClientRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateClient not implemented")
}

func (UnimplementedLibraryServiceServer) DeleteClient(context.Context, *DeleteClientRequest) (*StatusResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteClient not implemented")
}

func (UnimplementedLibraryServiceServer) mustEmbedUnimplementedLibraryServiceServer() {}

// RegisterLibraryServiceServer registers srv with the given registrar.
func RegisterLibraryServiceServer(s grpc.ServiceRegistrar, srv LibraryServiceServer) {
	s.RegisterService(&LibraryService_ServiceDesc, srv)
}

func _LibraryService_UserLogin_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).UserLogin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_UserLogin_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).UserLogin(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_CreateBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).CreateBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_CreateBook_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).CreateBook(ctx, req.(*CreateBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetBook_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).GetBook(ctx, req.(*GetBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_UpdateBookAvailability_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).UpdateBookAvailability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_UpdateBookAvailability_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).UpdateBookAvailability(ctx, req.(*UpdateBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_DeleteBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).DeleteBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_DeleteBook_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).DeleteBook(ctx, req.(*DeleteBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_SearchBooks_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SearchBooksRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LibraryServiceServer).SearchBooks(m, &grpc.GenericServerStream[SearchBooksRequest, Book]{ServerStream: stream})
}

// LibraryService_SearchBooksServer is the server side of the SearchBooks stream.
type LibraryService_SearchBooksServer = grpc.ServerStreamingServer[Book]

func _LibraryService_GetAllUsers_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GetAllUsersRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LibraryServiceServer).GetAllUsers(m, &grpc.GenericServerStream[GetAllUsersRequest, User]{ServerStream: stream})
}

// LibraryService_GetAllUsersServer is the server side of the GetAllUsers stream.
type LibraryService_GetAllUsersServer = grpc.ServerStreamingServer[User]

func _LibraryService_GetUserDetail_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserDetailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetUserDetail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetUserDetail_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).GetUserDetail(ctx, req.(*GetUserDetailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_DeleteUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_DeleteUser_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).DeleteUser(ctx, req.(*DeleteUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_CreateClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).CreateClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_CreateClient_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).CreateClient(ctx, req.(*CreateClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetClient_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).GetClient(ctx, req.(*GetClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetAllClients_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GetAllClientsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LibraryServiceServer).GetAllClients(m, &grpc.GenericServerStream[GetAllClientsRequest, Client]{ServerStream: stream})
}

// LibraryService_GetAllClientsServer is the server side of the GetAllClients stream.
type LibraryService_GetAllClientsServer = grpc.ServerStreamingServer[Client]

func _LibraryService_UpdateClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).UpdateClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_UpdateClient_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).UpdateClient(ctx, req.(*UpdateClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_DeleteClient_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).DeleteClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_DeleteClient_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LibraryServiceServer).DeleteClient(ctx, req.(*DeleteClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LibraryService_ServiceDesc is the grpc.ServiceDesc for the library administration service.
var LibraryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LibraryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UserLogin",
			Handler:    _LibraryService_UserLogin_Handler,
		},
		{
			MethodName: "CreateBook",
			Handler:    _LibraryService_CreateBook_Handler,
		},
		{
			MethodName: "GetBook",
			Handler:    _LibraryService_GetBook_Handler,
		},
		{
			MethodName: "UpdateBookAvailability",
			Handler:    _LibraryService_UpdateBookAvailability_Handler,
		},
		{
			MethodName: "DeleteBook",
			Handler:    _LibraryService_DeleteBook_Handler,
		},
		{
			MethodName: "GetUserDetail",
			Handler:    _LibraryService_GetUserDetail_Handler,
		},
		{
			MethodName: "DeleteUser",
			Handler:    _LibraryService_DeleteUser_Handler,
		},
		{
			MethodName: "CreateClient",
			Handler:    _LibraryService_CreateClient_Handler,
		},
		{
			MethodName: "GetClient",
			Handler:    _LibraryService_GetClient_Handler,
		},
		{
			MethodName: "UpdateClient",
			Handler:    _LibraryService_UpdateClient_Handler,
		},
		{
			MethodName: "DeleteClient",
			Handler:    _LibraryService_DeleteClient_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SearchBooks",
			Handler:       _LibraryService_SearchBooks_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetAllUsers",
			Handler:       _LibraryService_GetAllUsers_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetAllClients",
			Handler:       _LibraryService_GetAllClients_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "library.proto",
}
