package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/meetnmeal/internal/expiry"
	"github.com/mmynk/meetnmeal/internal/models"
	pb "github.com/mmynk/meetnmeal/pkg/proto"
	"github.com/mmynk/meetnmeal/pkg/proto/protoconnect"
)

// SessionService implements the SessionService RPC interface.
type SessionService struct {
	coord *Coordinator
}

var _ protoconnect.SessionServiceHandler = (*SessionService)(nil)

// NewSessionService creates a new SessionService backed by coord.
func NewSessionService(coord *Coordinator) *SessionService {
	return &SessionService{coord: coord}
}

// CreateSession starts a new group session.
func (s *SessionService) CreateSession(ctx context.Context, req *connect.Request[pb.CreateSessionRequest]) (*connect.Response[pb.CreateSessionResponse], error) {
	id, err := s.coord.Create()
	if err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.CreateSessionResponse{GroupId: id}), nil
}

// JoinSession adds a member to a session.
func (s *SessionService) JoinSession(ctx context.Context, req *connect.Request[pb.JoinSessionRequest]) (*connect.Response[pb.JoinSessionResponse], error) {
	res, err := s.coord.Join(req.Msg.GetGroupId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.JoinSessionResponse{UserId: res.UserID, Token: res.Token}), nil
}

// SubmitPreferences records a member's preferences.
func (s *SessionService) SubmitPreferences(ctx context.Context, req *connect.Request[pb.SubmitPreferencesRequest]) (*connect.Response[pb.SubmitPreferencesResponse], error) {
	prefs := preferencesFromProto(req.Msg.GetPreferences())
	if err := s.coord.Submit(req.Msg.GetGroupId(), req.Msg.GetUserId(), prefs); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.SubmitPreferencesResponse{Ok: true}), nil
}

// GetStatus returns readiness counts and state.
func (s *SessionService) GetStatus(ctx context.Context, req *connect.Request[pb.GetStatusRequest]) (*connect.Response[pb.GetStatusResponse], error) {
	st, err := s.coord.Status(req.Msg.GetGroupId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.GetStatusResponse{
		Joined: int32(st.Joined),
		Ready:  int32(st.Ready),
		State:  string(st.State),
	}), nil
}

// Compute runs the recommendation engine and returns the ranked list.
func (s *SessionService) Compute(ctx context.Context, req *connect.Request[pb.ComputeRequest]) (*connect.Response[pb.ComputeResponse], error) {
	result, err := s.coord.Compute(ctx, req.Msg.GetGroupId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.ComputeResponse{Restaurants: restaurantsToProto(result)}), nil
}

// GetResult returns the stored ranked list.
func (s *SessionService) GetResult(ctx context.Context, req *connect.Request[pb.GetResultRequest]) (*connect.Response[pb.GetResultResponse], error) {
	result, err := s.coord.Result(req.Msg.GetGroupId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.GetResultResponse{Restaurants: restaurantsToProto(result)}), nil
}

// CloseSession winds a session down.
func (s *SessionService) CloseSession(ctx context.Context, req *connect.Request[pb.CloseSessionRequest]) (*connect.Response[pb.CloseSessionResponse], error) {
	if err := s.coord.Close(req.Msg.GetGroupId(), int(req.Msg.GetGrace())); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.CloseSessionResponse{Ok: true}), nil
}

// GetArchive returns the summary of an ended session.
func (s *SessionService) GetArchive(ctx context.Context, req *connect.Request[pb.GetArchiveRequest]) (*connect.Response[pb.GetArchiveResponse], error) {
	rec, err := s.coord.Record(ctx, req.Msg.GetGroupId())
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.GetArchiveResponse{
		GroupId:     rec.ID,
		CreatedAt:   timestamppb.New(time.Unix(rec.CreatedAt, 0)),
		ClosedAt:    timestamppb.New(time.Unix(rec.ClosedAt, 0)),
		MemberCount: int32(rec.MemberCount),
		ReadyCount:  int32(rec.ReadyCount),
		Reason:      rec.Reason,
		TopPicks:    rec.TopPicks,
	}), nil
}

// preferencesFromProto converts a request payload. A missing payload is an
// empty preference set.
func preferencesFromProto(p *pb.Preferences) models.PreferenceSet {
	prefs := models.PreferenceSet{
		Cuisines:  p.GetCuisines(),
		RestTypes: p.GetRestTypes(),
		Dishes:    p.GetDishes(),
		Budget:    p.GetBudget(),
		Location:  models.Location{Area: p.GetLocation().GetArea()},
	}
	if c := p.GetLocation().GetCoords(); c != nil {
		prefs.Location.Coords = &models.Coordinates{Lat: c.GetLat(), Lng: c.GetLng()}
	}
	return prefs
}

func restaurantsToProto(list []models.Recommendation) []*pb.Restaurant {
	out := make([]*pb.Restaurant, len(list))
	for i, r := range list {
		out[i] = &pb.Restaurant{
			Name:               r.Name,
			Cuisines:           models.JoinTags(r.Cuisines),
			RestType:           models.JoinTags(r.RestTypes),
			Cost:               r.Cost,
			Location:           r.Location,
			Rate:               r.Rating,
			DistanceKm:         r.DistanceKm,
			DistanceScore:      r.DistanceScore,
			FinalScoreAdjusted: r.Score,
		}
	}
	return out
}

// connectError maps domain errors to Connect codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrWrongState):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, models.ErrNotReady):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, models.ErrComputeFailed):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, models.ErrInvalidPreferences), errors.Is(err, expiry.ErrInvalidGrace):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
