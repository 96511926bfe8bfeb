package service

import (
	"context"
	"log"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/directory"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/pkg/mailer"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITeamService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowTeamResponse, error)
	AddMember(ctx context.Context, userId uuid.UUID, teamId uuid.UUID, req *dto.AddTeamMemberRequest) error
	RemoveMember(ctx context.Context, userId uuid.UUID, teamId uuid.UUID, memberUserId uuid.UUID) error
}

type teamService struct {
	uowFactory   unitofwork.RepositoryFactory
	resolver     *access.Resolver
	directory    *directory.Directory
	emailService mailer.IEmailService
}

func NewTeamService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	dir *directory.Directory,
	emailService mailer.IEmailService,
) ITeamService {
	return &teamService{
		uowFactory:   uowFactory,
		resolver:     resolver,
		directory:    dir,
		emailService: emailService,
	}
}

func (s *teamService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := loadPrincipal(ctx, uow, userId); err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.TeamRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	team := &entity.Team{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return nil, err
	}

	// The creator joins as owner so the team is never left unmanageable.
	member := &entity.TeamMember{
		Id:        uuid.New(),
		TeamId:    team.Id,
		UserId:    userId,
		Role:      entity.TeamRoleOwner,
		CreatedAt: time.Now(),
	}
	if err := uow.TeamMemberRepository().Create(ctx, member); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.directory.Invalidate(userId, team.Id)
	return &dto.CreateTeamResponse{Id: team.Id, Slug: team.Slug}, nil
}

func (s *teamService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowTeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	team, err := uow.TeamRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperr.NotFound("team not found")
	}

	// The directory is member-visible; the global admin read bypass applies.
	role, err := s.directory.MembershipRole(ctx, userId, team.Id)
	if err != nil {
		return nil, err
	}
	if role == nil && !principal.IsAdmin() {
		return nil, apperr.AccessDenied("you are not a member of this team")
	}

	members, err := uow.TeamMemberRepository().FindAll(ctx, specification.ByTeamID{TeamID: team.Id})
	if err != nil {
		return nil, err
	}

	var userIds []uuid.UUID
	for _, m := range members {
		userIds = append(userIds, m.UserId)
	}
	names := make(map[uuid.UUID]string, len(userIds))
	if len(userIds) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIds})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.Id] = u.FullName
		}
	}

	res := &dto.ShowTeamResponse{
		Id:        team.Id,
		Name:      team.Name,
		Slug:      team.Slug,
		Members:   make([]dto.TeamMemberResponse, len(members)),
		CreatedAt: team.CreatedAt,
	}
	for i, m := range members {
		res.Members[i] = dto.TeamMemberResponse{
			UserId:   m.UserId,
			FullName: names[m.UserId],
			Role:     string(m.Role),
		}
	}
	return res, nil
}

func (s *teamService) AddMember(ctx context.Context, userId uuid.UUID, teamId uuid.UUID, req *dto.AddTeamMemberRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return err
	}
	if team == nil {
		return apperr.NotFound("team not found")
	}
	if !s.resolver.CanManageTeam(ctx, principal, team.Id) {
		return apperr.AccessDenied("only team owners and admins may manage members")
	}

	role := entity.TeamRole(req.Role)
	if !role.Valid() {
		return apperr.InvalidRequest("invalid team role: " + req.Role)
	}

	target, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.NotFound("user not found")
	}

	existing, err := uow.TeamMemberRepository().FindOne(ctx,
		specification.ByTeamID{TeamID: team.Id},
		specification.ByUserID{UserID: req.UserId},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.InvalidRequest("user is already a member of this team")
	}

	member := &entity.TeamMember{
		Id:        uuid.New(),
		TeamId:    team.Id,
		UserId:    req.UserId,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uow.TeamMemberRepository().Create(ctx, member); err != nil {
		return err
	}

	s.directory.Invalidate(req.UserId, team.Id)

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendTeamInvite(target.Email, team.Name, principal.FullName); err != nil {
				log.Printf("[WARN] Failed to send team invite to %s: %v", target.Email, err)
			}
		}()
	}
	return nil
}

func (s *teamService) RemoveMember(ctx context.Context, userId uuid.UUID, teamId uuid.UUID, memberUserId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return err
	}
	if team == nil {
		return apperr.NotFound("team not found")
	}
	if !s.resolver.CanManageTeam(ctx, principal, team.Id) {
		return apperr.AccessDenied("only team owners and admins may manage members")
	}

	member, err := uow.TeamMemberRepository().FindOne(ctx,
		specification.ByTeamID{TeamID: team.Id},
		specification.ByUserID{UserID: memberUserId},
	)
	if err != nil {
		return err
	}
	if member == nil {
		return apperr.NotFound("member not found")
	}

	// A team must always keep at least one owner.
	if member.Role == entity.TeamRoleOwner {
		owners, err := uow.TeamMemberRepository().Count(ctx,
			specification.ByTeamID{TeamID: team.Id},
			specification.Filter("role", string(entity.TeamRoleOwner)),
		)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return apperr.InvalidRequest("cannot remove the last owner of a team")
		}
	}

	if err := uow.TeamMemberRepository().Delete(ctx, member.Id); err != nil {
		return err
	}

	s.directory.Invalidate(memberUserId, team.Id)
	return nil
}
