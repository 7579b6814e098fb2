package newsletterHandler

import (
	"time"

	newsletter "Robostaan/internal/api/newsletter"
	contextPkg "Robostaan/pkg/context"
	"Robostaan/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

func parsePagination(ctx *fiber.Ctx) (limit, offset int) {
	limit = ctx.QueryInt("limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset = ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

func (h *NewsletterHandler) HandleSubscribe(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req newsletter.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	subscription, err := h.newsletterService.Subscription().Subscribe(c, req.Email)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "newsletter_subscribe")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, subscription)
	}
}

func (h *NewsletterHandler) HandleUnsubscribe(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	token := ctx.Query("token")

	if err := h.newsletterService.Subscription().Unsubscribe(c, token); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "newsletter_unsubscribe")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Unsubscribed successfully")
	}
}

func (h *NewsletterHandler) HandleGetAllSubscriptions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	limit, offset := parsePagination(ctx)

	list, err := h.newsletterService.Subscription().GetAllSubscriptions(c, limit, offset)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_subscriptions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, list)
	}
}
