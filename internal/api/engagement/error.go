package engagement

import "Robostaan/pkg/response"

var (
	ErrCommentNotFound    = response.NewError(404, "comment not found")
	ErrTargetNotSpecified = response.NewError(400, "exactly one of blog_id or course_id must be set")
	ErrTargetNotFound     = response.NewError(404, "target not found")
	ErrParentMismatch     = response.NewError(400, "parent comment belongs to a different target")
	ErrReplyToReply       = response.NewError(400, "replies can only target top-level comments")
	ErrCommentNotOwned    = response.NewError(403, "comment does not belong to user")
	ErrCreateComment      = response.NewError(500, "failed to create comment")
	ErrToggleLike         = response.NewError(500, "failed to toggle like")
)
