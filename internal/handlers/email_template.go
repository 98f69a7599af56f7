package handlers

import (
	"fmt"
	"time"
)

// otpEmailHTML renders the verification-code email body. The expiry line
// reflects the registry's configured TTL; with expiry disabled it is left
// out rather than advertising a lifetime nothing enforces.
func otpEmailHTML(code string, ttl time.Duration) string {
	expiryLine := ""
	if ttl > 0 {
		expiryLine = fmt.Sprintf(
			`<p style="font-size: 14px; color: #888;">This code will expire in %d minutes.</p>`,
			int(ttl.Minutes()))
	}

	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <h2 style="color: #333;">Verification Code</h2>
          <p style="font-size: 16px; color: #666;">Hello,</p>
          <p style="font-size: 16px; color: #666;">Your verification code is:</p>
          <div style="background-color: #f4f4f4; padding: 15px; text-align: center; margin: 20px 0;">
            <h1 style="color: #333; letter-spacing: 5px; margin: 0;">%s</h1>
          </div>
          %s
          <p style="font-size: 14px; color: #888;">If you didn't request this code, please ignore this email.</p>
          <hr style="border: 1px solid #eee; margin: 20px 0;">
          <p style="font-size: 12px; color: #999;">This is an automated message, please do not reply.</p>
        </div>
      `, code, expiryLine)
}
