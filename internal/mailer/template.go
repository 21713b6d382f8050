package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/lifewood/careers-backend/internal/recruit"
)

const (
	teamName = "The Lifewood Recruitment Team"
	siteURL  = "https://lifewood-ony.vercel.app/"
)

// statusTemplate holds the static pieces of one status email. Body templates
// run through html/template so applicant-supplied name/position values are
// escaped before they reach the HTML output.
type statusTemplate struct {
	subject    string
	header     string
	closing    string
	buttonText string
	buttonLink func(position string) string
	body       *template.Template
}

func bodyTmpl(name, s string) *template.Template {
	return template.Must(template.New(name).Parse(s))
}

const pStyle = `margin:0 0 25px 0;font-size:16px;line-height:1.7;color:#333333;`
const pStyleLast = `margin:0;font-size:16px;line-height:1.7;color:#333333;`

var statusTemplates = map[string]statusTemplate{
	recruit.StatusReceived: {
		subject:    "Your Lifewood Application Has Been Received",
		header:     "Application Received!",
		closing:    "Sincerely,",
		buttonText: "Visit Our Website",
		buttonLink: func(string) string { return siteURL },
		body: bodyTmpl("received", `<p style="`+pStyle+`">This is to confirm that we have successfully received your application for the <strong>{{.Position}}</strong> role at Lifewood.</p><p style="`+pStyleLast+`">Our hiring team is now reviewing applications and will be in touch with the next steps as soon as possible. Thank you for your interest in joining our team!</p>`),
	},
	recruit.StatusUnderReview: {
		subject:    "Update on Your Lifewood Application",
		header:     "Your Application is Under Review",
		closing:    "Sincerely,",
		buttonText: "Visit Our Website",
		buttonLink: func(string) string { return siteURL },
		body: bodyTmpl("under-review", `<p style="`+pStyle+`">This is a quick confirmation that we have received your application for the <strong>{{.Position}}</strong> role at Lifewood, and it is now under review by our hiring team.</p><p style="`+pStyleLast+`">We appreciate your patience during this process and will be in touch with the next steps as soon as we have an update. Thank you for your interest in joining our team!</p>`),
	},
	recruit.StatusInterviewScheduled: {
		subject:    "Invitation to Interview with Lifewood",
		header:     "Invitation to Interview",
		closing:    "Best regards,",
		buttonText: "Confirm or Reschedule",
		buttonLink: func(position string) string {
			return "mailto:hr@lifewood.com?subject=Regarding Interview for " + position
		},
		body: bodyTmpl("interview", `<p style="`+pStyle+`">Congratulations! We were very impressed with your application for the <strong>{{.Position}}</strong> role and would like to invite you for an interview.</p><p style="`+pStyle+`">{{.ScheduleDetails}} Please confirm if this time works for you. If you need to reschedule, please reply to this email as soon as possible.</p><p style="`+pStyleLast+`">We look forward to speaking with you!</p>`),
	},
	recruit.StatusOfferExtended: {
		subject:    "Exciting News: An Offer of Employment from Lifewood",
		header:     "A Job Offer from Lifewood",
		closing:    "We look forward to hearing from you,",
		buttonText: "Contact HR to Discuss",
		buttonLink: func(position string) string {
			return "mailto:hr@lifewood.com?subject=Regarding My Offer for the " + position + " Position"
		},
		body: bodyTmpl("offer", `<p style="`+pStyle+`">Following your recent interviews for the <strong>{{.Position}}</strong> position, we are absolutely delighted to formally extend to you an offer of employment with Lifewood!</p><p style="`+pStyle+`">The entire team was thoroughly impressed with your skills and experience. Our Human Resources department will be sending a separate, detailed offer letter for your review, which will include information on compensation, benefits, and your proposed start date.</p><p style="`+pStyleLast+`">We are incredibly excited about the possibility of you joining us.</p>`),
	},
	recruit.StatusHired: {
		subject:    "An Exciting Update on Your Application with Lifewood",
		header:     "Welcome to the Lifewood Team!",
		closing:    "Best regards,",
		buttonText: "Contact HR",
		buttonLink: func(string) string { return "mailto:hr@lifewood.com?subject=Regarding My Job Offer" },
		body: bodyTmpl("hired", `<p style="`+pStyle+`">We are absolutely thrilled to inform you that your application for the <strong>{{.Position}}</strong> position at Lifewood has been <strong>successful</strong>!</p><p style="`+pStyleLast+`">Our Human Resources department will be reaching out to you within the next two business days to provide the full offer details, discuss your potential start date, and guide you through our comprehensive onboarding process.</p>`),
	},
	recruit.StatusRejected: {
		subject:    "An Update on Your Application with Lifewood",
		header:     "Thank You For Your Interest",
		closing:    "Sincerely,",
		buttonText: "Explore Other Roles",
		buttonLink: func(string) string { return siteURL + "services.html" },
		body: bodyTmpl("rejected", `<p style="`+pStyle+`">Thank you again for your interest in the <strong>{{.Position}}</strong> position and for taking the time to interview with our team at Lifewood.</p><p style="`+pStyleLast+`">The selection process was exceptionally competitive, and after careful consideration, we have decided to move forward with another applicant. We will keep your application on file for future opportunities and wish you the very best in your job search.</p>`),
	},
}

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html><html><head><meta charset="UTF-8"><style>@import url('https://fonts.googleapis.com/css2?family=Manrope:wght@400;700;800&display=swap');body{font-family:'Manrope',Arial,sans-serif;}</style></head><body style="margin:0;padding:0;background-color:#f5eedb;"><table border="0" cellpadding="0" cellspacing="0" width="100%"><tr><td style="padding:40px 20px;"><table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse:collapse;background-color:#ffffff;border-radius:8px;box-shadow:0 4px 15px rgba(0,0,0,0.1);"><tr><td align="center" style="padding:30px 20px 20px 20px;"><a href="` + siteURL + `" target="_blank" style="text-decoration:none;display:inline-block;"><svg width="24" height="32" viewBox="0 0 24 42" xmlns="http://www.w3.org/2000/svg" style="vertical-align:middle;margin-right:8px;height:32px;width:auto;"><path d="M12 0L23.5962 10.5V31.5L12 42L0.403847 31.5V10.5L12 0Z" fill="#FFB347"/></svg><span style="font-family:'Manrope',Arial,sans-serif;font-size:30px;font-weight:800;letter-spacing:-0.5px;color:#133020;vertical-align:middle;">lifewood</span></a></td></tr><tr><td style="padding:20px 40px;"><h1 style="font-size:28px;font-weight:700;color:#046241;margin:0 0 25px 0;text-align:center;">{{.Header}}</h1><p style="margin:0 0 15px 0;font-size:16px;line-height:1.7;color:#333333;">Dear {{.Name}},</p>{{.Body}}</td></tr><tr><td align="center" style="padding:10px 40px 30px 40px;"><a href="{{.ButtonLink}}" target="_blank" style="display:inline-block;padding:14px 35px;background-color:#FFB347;color:#133020;text-decoration:none;font-weight:700;border-radius:5px;font-size:16px;">{{.ButtonText}}</a></td></tr><tr><td style="padding:0px 40px 40px 40px;"><p style="margin:0;font-size:16px;line-height:1.7;color:#333333;">{{.Closing}}</p><p style="margin:5px 0 0 0;font-size:16px;line-height:1.7;color:#333333;">` + teamName + `</p></td></tr></table></td></tr></table></body></html>`))

// isoLayouts are accepted for the interview window timestamps. The admin
// console sends datetime-local values without a zone.
var isoLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseISO(v string) (time.Time, error) {
	var err error
	for _, l := range isoLayouts {
		var t time.Time
		if t, err = time.Parse(l, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// scheduleDetails builds the interview-window sentence. Unparseable or absent
// timestamps fall back to a generic phrase; this never fails.
func scheduleDetails(start, end string) template.HTML {
	if start == "" || end == "" {
		return "Our team will reach out to you shortly to coordinate a time."
	}
	s, errS := parseISO(start)
	e, errE := parseISO(end)
	if errS != nil || errE != nil {
		return template.HTML(fmt.Sprintf("We have scheduled your interview from %s to %s.",
			template.HTMLEscapeString(start), template.HTMLEscapeString(end)))
	}
	return template.HTML(fmt.Sprintf("We have scheduled your interview on <strong>%s from %s to %s</strong>.",
		s.Format("Monday, January 2, 2006"), s.Format("3:04 PM"), e.Format("3:04 PM")))
}

// Render produces the subject line and HTML body for a status notification.
// Unknown statuses yield empty strings; Render never fails.
func Render(applicantName, position, status, interviewStart, interviewEnd string) (subject, html string) {
	st, ok := statusTemplates[status]
	if !ok {
		return "", ""
	}

	var body strings.Builder
	_ = st.body.Execute(&body, struct {
		Position        string
		ScheduleDetails template.HTML
	}{
		Position:        position,
		ScheduleDetails: scheduleDetails(interviewStart, interviewEnd),
	})

	var out strings.Builder
	_ = layout.Execute(&out, struct {
		Header     string
		Name       string
		Body       template.HTML
		ButtonLink string
		ButtonText string
		Closing    string
	}{
		Header:     st.header,
		Name:       applicantName,
		Body:       template.HTML(body.String()),
		ButtonLink: st.buttonLink(position),
		ButtonText: st.buttonText,
		Closing:    st.closing,
	})
	return st.subject, out.String()
}
