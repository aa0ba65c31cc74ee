package dashboard

import "html/template"

var pageTemplates = template.Must(template.New("dashboard").Parse(`
{{define "head"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CareConnect</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 70em; }
nav a { margin-right: 1em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
form { margin: 1em 0; padding: 1em; border: 1px solid #ddd; }
input, textarea, select { display: block; margin: 0.3em 0 0.8em; width: 24em; }
.error { color: #b00020; }
.flash { color: #1b5e20; }
.bar { background: #4a90d9; height: 0.8em; }
.chat-you { font-weight: bold; }
.metric { display: inline-block; margin-right: 2em; }
.metric b { font-size: 1.6em; display: block; }
</style>
</head>
<body>
<h1>CareConnect</h1>
<nav>
<a href="/">Home</a>
<a href="/patient">Patient</a>
<a href="/doctor">Doctor</a>
<a href="/nurse">Nurse</a>
<a href="/admin">Admin</a>
</nav>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}
{{end}}

{{define "foot"}}
</body>
</html>
{{end}}

{{define "appointments_table"}}
<table>
<tr><th>ID</th><th>Patient</th><th>Doctor</th><th>Department</th><th>Scheduled</th><th>Status</th></tr>
{{range .}}
<tr>
<td>{{.AppointmentID}}</td><td>{{.PatientID}}</td><td>{{.DoctorID}}</td>
<td>{{if .Department}}{{.Department}}{{end}}</td>
<td>{{.ScheduledTime.Format "2006-01-02 15:04"}}</td><td>{{.Status}}</td>
</tr>
{{end}}
</table>
{{end}}

{{define "vitals_table"}}
<table>
<tr><th>Recorded</th><th>Temperature</th><th>Pulse</th><th>BP</th><th>Oxygen</th><th>Notes</th></tr>
{{range .}}
<tr>
<td>{{.RecordedAt.Format "2006-01-02 15:04"}}</td>
<td>{{.Temperature}}</td><td>{{.Pulse}}</td><td>{{.BP}}</td><td>{{.Oxygen}}</td>
<td>{{if .Notes}}{{.Notes}}{{end}}</td>
</tr>
{{end}}
</table>
{{end}}

{{define "home"}}
{{template "head" .}}
<p>Select a role above to open its dashboard.</p>
{{template "foot" .}}
{{end}}

{{define "patient"}}
{{template "head" .}}
<h2>Patient Portal</h2>

<h3>Register</h3>
<form method="post" action="/patient/register">
<label>Full Name <input name="name"></label>
<label>Email <input name="email"></label>
<label>Phone <input name="phone"></label>
<label>Age <input name="age" type="number" min="1" max="120"></label>
<label>Gender <select name="gender"><option>Male</option><option>Female</option><option>Other</option></select></label>
<label>Blood Group <input name="blood_group"></label>
<label>Allergies <input name="allergies"></label>
<label>Medical History <textarea name="medical_history"></textarea></label>
<button>Register</button>
</form>
{{if .Registered}}<p class="flash">Patient ID: {{.Registered.PatientID}}</p>{{end}}

<h3>Book Appointment</h3>
<form method="post" action="/patient/book">
<label>Patient ID <input name="patient_id"></label>
<label>Doctor ID <input name="doctor_id"></label>
<label>Department <input name="department"></label>
<label>Date <input name="date" type="date"></label>
<label>Time <input name="time" type="time"></label>
<button>Book</button>
</form>
{{if .Booked}}<p class="flash">Appointment booked for {{.Booked.ScheduledTime.Format "2006-01-02 15:04"}}</p>{{end}}

<h3>Your Appointments</h3>
<form method="get" action="/patient">
<label>Patient ID <input name="patient_id" value="{{.AppointmentsFor}}"></label>
<button>Fetch</button>
</form>
{{if .Appointments}}{{template "appointments_table" .Appointments}}{{end}}

<h3>AI Symptom Checker</h3>
<form method="post" action="/patient/symptoms">
<label>Describe your symptoms <textarea name="symptoms"></textarea></label>
<label>Additional notes <input name="vitals_note"></label>
<button>Get Suggestion</button>
</form>
{{if .Symptom}}
<ul>{{range .Symptom.PossibleConditions}}<li>{{.}}</li>{{end}}</ul>
<p><em>{{.Symptom.Advice}}</em></p>
{{end}}

<h3>Chat-based Intake</h3>
{{range .Chat}}
<p>{{if eq .Sender "you"}}<span class="chat-you">You:</span>{{else}}Bot:{{end}} {{.Text}}</p>
{{end}}
<form method="post" action="/patient/chat">
<label>Message <input name="message"></label>
<button>Send</button>
</form>
<form method="post" action="/patient/chat/reset"><button>Reset chat</button></form>
{{template "foot" .}}
{{end}}

{{define "doctor"}}
{{template "head" .}}
<h2>Doctor Dashboard</h2>
<form method="get" action="/doctor">
<label>Your Doctor ID <input name="doctor_id" value="{{.DoctorID}}"></label>
<button>Load</button>
</form>

{{if .DoctorID}}
<h3>My Appointments</h3>
{{if .Appointments}}{{template "appointments_table" .Appointments}}{{else}}<p>No appointments found.</p>{{end}}

<h3>My Patients</h3>
{{if .Patients}}
<table>
<tr><th>Patient ID</th><th>Name</th><th>Age</th><th>Gender</th><th>Blood Group</th></tr>
{{range .Patients}}
<tr>
<td>{{.PatientID}}</td>
<td>{{if .User}}{{.User.Name}}{{end}}</td>
<td>{{if .Age}}{{.Age}}{{end}}</td>
<td>{{if .Gender}}{{.Gender}}{{end}}</td>
<td>{{if .BloodGroup}}{{.BloodGroup}}{{end}}</td>
</tr>
{{end}}
</table>
{{else}}<p>No patients linked yet.</p>{{end}}

<h3>Record Diagnosis</h3>
<form method="post" action="/doctor/diagnosis">
<input type="hidden" name="doctor_id" value="{{.DoctorID}}">
<label>Patient ID <input name="patient_id"></label>
<label>Appointment ID (optional) <input name="appointment_id"></label>
<label>Summary <input name="summary"></label>
<label>Details <textarea name="details"></textarea></label>
<button>Save Diagnosis</button>
</form>
{{if .Diagnoses}}
<table>
<tr><th>Created</th><th>Patient</th><th>Summary</th><th>Details</th></tr>
{{range .Diagnoses}}
<tr><td>{{.CreatedAt.Format "2006-01-02"}}</td><td>{{.PatientID}}</td><td>{{.Summary}}</td><td>{{if .Details}}{{.Details}}{{end}}</td></tr>
{{end}}
</table>
{{end}}

<h3>Create Prescription</h3>
<form method="post" action="/doctor/prescription">
<input type="hidden" name="doctor_id" value="{{.DoctorID}}">
<label>Patient ID <input name="patient_id"></label>
<label>Medication Name <input name="medication_name"></label>
<label>Dosage <input name="dosage"></label>
<label>Instructions <textarea name="instructions"></textarea></label>
<label>Start Date <input name="start_date" type="date"></label>
<label>End Date <input name="end_date" type="date"></label>
<button>Save Prescription</button>
</form>
{{if .Prescriptions}}
<table>
<tr><th>Created</th><th>Patient</th><th>Medication</th><th>Dosage</th><th>Start</th><th>End</th></tr>
{{range .Prescriptions}}
<tr>
<td>{{.CreatedAt.Format "2006-01-02"}}</td><td>{{.PatientID}}</td><td>{{.MedicationName}}</td>
<td>{{if .Dosage}}{{.Dosage}}{{end}}</td>
<td>{{if .StartDate}}{{.StartDate}}{{end}}</td>
<td>{{if .EndDate}}{{.EndDate}}{{end}}</td>
</tr>
{{end}}
</table>
{{end}}

<h3>Vitals Monitor</h3>
<form method="get" action="/doctor">
<input type="hidden" name="doctor_id" value="{{.DoctorID}}">
<label>Patient ID for vitals <input name="patient_id" value="{{.VitalsFor}}"></label>
<button>Load Vitals</button>
</form>
{{if .Vitals}}
{{template "vitals_table" .Vitals}}
{{range .Series}}
<h4>{{.Name}}</h4>
{{range .Bars}}<div class="bar" style="width: {{.}}%"></div>{{end}}
{{end}}
{{end}}
{{end}}
{{template "foot" .}}
{{end}}

{{define "nurse"}}
{{template "head" .}}
<h2>Nurse Dashboard</h2>

<h3>Record Patient Vitals</h3>
<form method="post" action="/nurse/vitals">
<label>Patient ID <input name="patient_id"></label>
<label>Temperature <input name="temperature"></label>
<label>Pulse <input name="pulse"></label>
<label>Blood Pressure <input name="bp"></label>
<label>Oxygen (SpO2) <input name="oxygen"></label>
<label>Notes <textarea name="notes"></textarea></label>
<button>Save Vitals</button>
</form>

<h3>Today's Appointments</h3>
{{if .Today}}{{template "appointments_table" .Today}}{{else}}<p>No appointments for today.</p>{{end}}
{{template "foot" .}}
{{end}}

{{define "admin"}}
{{template "head" .}}
<h2>Admin Dashboard</h2>

{{if .Stats}}
<div>
<span class="metric"><b>{{.Stats.TotalUsers}}</b>Users</span>
<span class="metric"><b>{{.Stats.TotalPatients}}</b>Patients</span>
<span class="metric"><b>{{.Stats.TotalDoctors}}</b>Doctors</span>
<span class="metric"><b>{{.Stats.TotalNurses}}</b>Nurses</span>
<span class="metric"><b>{{.Stats.TotalAppointments}}</b>Appointments</span>
<span class="metric"><b>{{.Stats.UpcomingAppointments}}</b>Upcoming</span>
<span class="metric"><b>{{.Stats.TotalVitals}}</b>Vitals</span>
</div>
<h3>Users by Role</h3>
<ul>
{{range $role, $count := .Stats.Roles}}<li><b>{{$role}}</b>: {{$count}}</li>{{end}}
</ul>
{{end}}

<h3>All Users</h3>
{{if .Users}}
<table>
<tr><th>ID</th><th>Name</th><th>Email</th><th>Role</th><th>Created</th></tr>
{{range .Users}}
<tr><td>{{.UserID}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Role}}</td><td>{{.CreatedAt.Format "2006-01-02"}}</td></tr>
{{end}}
</table>
{{end}}

<h3>All Appointments</h3>
{{if .Appointments}}{{template "appointments_table" .Appointments}}{{end}}

<h3>All Vitals</h3>
{{if .Vitals}}{{template "vitals_table" .Vitals}}{{end}}
{{template "foot" .}}
{{end}}
`))
