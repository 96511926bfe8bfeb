package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	AddMember(ctx *fiber.Ctx) error
	RemoveMember(ctx *fiber.Ctx) error
}

type teamController struct {
	teamService service.ITeamService
}

func NewTeamController(teamService service.ITeamService) ITeamController {
	return &teamController{
		teamService: teamService,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/team/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":slug", c.Show)
	h.Post(":id/members", c.AddMember)
	h.Delete(":id/members/:userId", c.RemoveMember)
}

func (c *teamController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTeamRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.teamService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create team", res))
}

func (c *teamController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.teamService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show team", res))
}

func (c *teamController) AddMember(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.InvalidRequest("invalid team id")
	}

	var req dto.AddTeamMemberRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.teamService.AddMember(ctx.Context(), userId, teamId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success add team member", nil))
}

func (c *teamController) RemoveMember(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.InvalidRequest("invalid team id")
	}
	memberUserId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return apperr.InvalidRequest("invalid user id")
	}

	if err := c.teamService.RemoveMember(ctx.Context(), userId, teamId, memberUserId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove team member", nil))
}
