package service

import "fmt"

func contactNotificationTemplate(msg ContactMessage, appName string) (string, string) {
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf(`You received a new message through the %s contact form.

Name: %s
Email: %s

Message:
%s

Reply to this email to answer %s directly.`, appName, msg.Name, msg.Email, msg.Message, msg.Name)

	return subject, body
}

func contactAutoReplyTemplate(msg ContactMessage, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("We received your message - %s", appName)
	body := fmt.Sprintf(`Hi %s,

Thanks for reaching out! We received your message and a member of the team will get back to you soon.

For reference, here is what you sent:

%s

In the meantime, check out our upcoming events: %s/events

Best,
The %s Team`, msg.Name, msg.Message, appURL, appName)

	return subject, body
}
