package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/pkg/api"
)

const (
	// MemberServiceName is the fully-qualified name of the MemberService service.
	MemberServiceName = "splitter.v1.MemberService"

	MemberServiceCreateMemberProcedure = "/splitter.v1.MemberService/CreateMember"
	MemberServiceListMembersProcedure  = "/splitter.v1.MemberService/ListMembers"
	MemberServiceDeleteMemberProcedure = "/splitter.v1.MemberService/DeleteMember"
)

// MemberServiceHandler is implemented by the server side of MemberService.
type MemberServiceHandler interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler from the service implementation.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	createMember := connect.NewUnaryHandler(MemberServiceCreateMemberProcedure, svc.CreateMember, opts...)
	listMembers := connect.NewUnaryHandler(MemberServiceListMembersProcedure, svc.ListMembers, opts...)
	deleteMember := connect.NewUnaryHandler(MemberServiceDeleteMemberProcedure, svc.DeleteMember, opts...)

	return "/" + MemberServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MemberServiceCreateMemberProcedure:
			createMember.ServeHTTP(w, r)
		case MemberServiceListMembersProcedure:
			listMembers.ServeHTTP(w, r)
		case MemberServiceDeleteMemberProcedure:
			deleteMember.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// MemberServiceClient is a client for MemberService.
type MemberServiceClient interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
}

// NewMemberServiceClient constructs a client for MemberService rooted at baseURL.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &memberServiceClient{
		createMember: connect.NewClient[api.CreateMemberRequest, api.CreateMemberResponse](httpClient, baseURL+MemberServiceCreateMemberProcedure, opts...),
		listMembers:  connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](httpClient, baseURL+MemberServiceListMembersProcedure, opts...),
		deleteMember: connect.NewClient[api.DeleteMemberRequest, api.DeleteMemberResponse](httpClient, baseURL+MemberServiceDeleteMemberProcedure, opts...),
	}
}

type memberServiceClient struct {
	createMember *connect.Client[api.CreateMemberRequest, api.CreateMemberResponse]
	listMembers  *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
	deleteMember *connect.Client[api.DeleteMemberRequest, api.DeleteMemberResponse]
}

func (c *memberServiceClient) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}
