package runtime

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/errors"
	"fmt"
	"log/slog"
)

const (
	noPermissionMessage   = "You do not have permission to set default names for other users."
	nameSetMessage        = "Set default channel name to \"%s\"."
	nameClearedMessage    = "Cleared default channel name."
	nameTooLongMessage    = "Default channel name cannot exceed 50 characters."
	nameFailedMessage     = "Failed to update default channel name."
	unknownCommandMessage = "This command is no longer available."
)

var _ contract.InteractionHandler = (*CustomNameHandler)(nil)

// CustomNameHandler serves the custom_dynamic_channel_name slash command.
// Only adminID may set the preferred name of another user.
type CustomNameHandler struct {
	log     *slog.Logger
	store   contract.NameStore
	adminID string
}

func NewCustomNameHandler(log *slog.Logger, store contract.NameStore, adminID string) *CustomNameHandler {
	return &CustomNameHandler{log: log, store: store, adminID: adminID}
}

func (h *CustomNameHandler) OnInteraction(ctx context.Context, evt contract.InteractionEvent) {
	i := evt.Interaction
	if i.Kind != domain.InteractionSlashCommand || i.Command == nil {
		return
	}
	log := h.log.With("user_id", i.UserID, "user_name", i.UserName)

	if i.Command.Name != domain.CustomNameCommand {
		log.Warn("Unknown command", "command", i.Command.Name)
		h.reply(ctx, log, evt.Responder, unknownCommandMessage)
		return
	}

	content, err := h.apply(ctx, log, i.UserID, *i.Command)
	if err != nil {
		log.Warn("Custom name command rejected", "error", err)
	}
	h.reply(ctx, log, evt.Responder, content)
}

func (h *CustomNameHandler) reply(ctx context.Context, log *slog.Logger, r contract.Responder, content string) {
	if err := r.Reply(ctx, content, true); err != nil {
		log.Warn("Failed to reply to interaction", "error", err)
	}
}

// apply returns the reply for the invocation and the reason it was refused, if any.
func (h *CustomNameHandler) apply(ctx context.Context, log *slog.Logger, invokerID string, cmd domain.CommandInvocation) (string, error) {
	targetID := invokerID
	if cmd.TargetUserID != "" {
		targetID = cmd.TargetUserID
	}
	if targetID != invokerID && invokerID != h.adminID {
		return noPermissionMessage, fmt.Errorf("%w: target %s", errors.ErrPermissionDenied, targetID)
	}

	var name string
	if cmd.CustomName != nil {
		normalized, err := domain.NormalizeCustomName(*cmd.CustomName)
		if err != nil {
			return nameTooLongMessage, err
		}
		name = normalized
	}

	log = log.With("target_id", targetID)
	if targetID != invokerID {
		log = log.With("target_name", cmd.TargetName)
	}
	if name == "" {
		if err := h.store.DeletePreferredName(ctx, targetID); err != nil {
			return nameFailedMessage, fmt.Errorf("delete preferred name: %w", err)
		}
		log.Info("Default channel name cleared")
		return nameClearedMessage, nil
	}

	if err := h.store.SetPreferredName(ctx, targetID, name); err != nil {
		return nameFailedMessage, fmt.Errorf("set preferred name: %w", err)
	}
	log.Info("Default channel name set", "name", name)
	return fmt.Sprintf(nameSetMessage, name), nil
}
