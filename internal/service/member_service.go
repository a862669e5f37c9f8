package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/internal/ledger"
	"github.com/mmynk/groupsplit/pkg/api"
	"github.com/mmynk/groupsplit/pkg/api/apiconnect"
)

// MemberService implements the Connect MemberService
type MemberService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.MemberServiceHandler = (*MemberService)(nil)

// NewMemberService creates a new MemberService backed by the given ledger.
func NewMemberService(l *ledger.Ledger) *MemberService {
	return &MemberService{ledger: l}
}

// CreateMember adds a member to a group.
func (s *MemberService) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	slog.Info("CreateMember request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
	)

	member, err := s.ledger.CreateMember(ctx, req.Msg.GroupID, req.Msg.Name, req.Msg.Email)
	if err != nil {
		slog.Error("CreateMember failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member created", "group_id", member.GroupID, "member_id", member.ID)

	return connect.NewResponse(&api.CreateMemberResponse{
		Member: toAPIMember(member),
	}), nil
}

// ListMembers returns the members of a group, newest first.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	slog.Info("ListMembers request received", "group_id", req.Msg.GroupID)

	members, err := s.ledger.ListMembers(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListMembers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	apiMembers := make([]*api.Member, len(members))
	for i, member := range members {
		apiMembers[i] = toAPIMember(member)
	}

	return connect.NewResponse(&api.ListMembersResponse{
		Members: apiMembers,
	}), nil
}

// DeleteMember removes a member from a group.
func (s *MemberService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	slog.Info("DeleteMember request received",
		"group_id", req.Msg.GroupID,
		"member_id", req.Msg.MemberID,
	)

	if err := s.ledger.DeleteMember(ctx, req.Msg.GroupID, req.Msg.MemberID); err != nil {
		slog.Error("DeleteMember failed", "member_id", req.Msg.MemberID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member deleted", "group_id", req.Msg.GroupID, "member_id", req.Msg.MemberID)

	return connect.NewResponse(&api.DeleteMemberResponse{}), nil
}
