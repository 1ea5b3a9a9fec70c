package auth

import "context"

// LogMasterCredentialRejected never logs the supplied value, only its length.
func (sl *SecurityLogger) LogMasterCredentialRejected(ctx context.Context, suppliedLen int) {
	sl.logger.Warnf(ctx, "SECURITY: %s - supplied_len=%d", SecurityEventMasterCredentialRejected, suppliedLen)
}

func (sl *SecurityLogger) LogTokenRejected(ctx context.Context, reason Reason, err error) {
	sl.logger.Warnf(ctx, "SECURITY: %s - reason=%s error=%v", SecurityEventTokenRejected, reason, err)
}
