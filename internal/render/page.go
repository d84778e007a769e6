package render

import (
	"html/template"
	"strings"
)

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"firstName": func(name string) string {
		if i := strings.IndexByte(name, ' '); i > 0 {
			return name[:i]
		}
		return name
	},
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR" data-theme="{{.Theme}}">
<head>
  <meta charset="utf-8">
  <title>ACOLD Marketplace</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-screen="{{.Screen}}">
<header>
  <a href="/screens/home" class="logo">ACOLD</a>
  <nav>
    {{if .UserName}}
    <span id="user-greeting">Olá, {{firstName .UserName}}</span>
    {{if .IsSeller}}<a id="dashboard-btn" href="/screens/dashboard">Meu painel</a>{{end}}
    <form method="post" action="/logout"><button>Sair</button></form>
    {{else}}
    <a href="/screens/login">Entrar</a>
    <a href="/screens/register">Criar conta</a>
    {{end}}
    <form method="post" action="/theme"><button id="themeBtn">{{if eq .Theme "dark"}}☀️{{else}}🌙{{end}}</button></form>
  </nav>
</header>
{{if .NoticeMessage}}
<div id="toast-container">
  <div class="toast {{.NoticeLevel}}">{{if eq .NoticeLevel "success"}}✅{{else}}⚠️{{end}} {{.NoticeMessage}}</div>
</div>
{{end}}
<main class="screen active" id="{{.Screen}}-screen">
{{.Body}}
</main>
{{.Cart}}
{{if .ResetScroll}}<script>window.scrollTo(0, 0)</script>{{end}}
</body>
</html>
`))

// PageData is everything the shell needs around a screen body.
type PageData struct {
	Theme         string
	Screen        string
	UserName      string
	IsSeller      bool
	NoticeLevel   string
	NoticeMessage string
	ResetScroll   bool
	Body          template.HTML
	Cart          template.HTML
}

// Page wraps a screen fragment in the full document shell.
func Page(data PageData) (template.HTML, error) {
	var buf strings.Builder
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var authTmpl = template.Must(template.New("auth").Parse(`
{{define "login-form"}}
<form id="login-form" method="post" action="/login">
  <input id="login-email" name="email" type="email" placeholder="E-mail" required>
  <input id="login-pass" name="password" type="password" placeholder="Senha" required>
  <button class="btn-primary">Entrar</button>
  <a href="/screens/register">Ainda não tem conta?</a>
</form>
{{end}}

{{define "register-form"}}
<form id="register-form" method="post" action="/register">
  <input id="reg-name" name="name" placeholder="Nome completo" required>
  <input id="reg-email" name="email" type="email" placeholder="E-mail" required>
  <input id="reg-pass" name="password" type="password" placeholder="Senha" required>
  <select id="reg-type" name="role">
    <option value="client">Quero comprar</option>
    <option value="seller">Quero vender</option>
  </select>
  <button class="btn-primary">Criar conta</button>
</form>
{{end}}
`))

// LoginForm renders the login screen body.
func LoginForm() (template.HTML, error) {
	var buf strings.Builder
	if err := authTmpl.ExecuteTemplate(&buf, "login-form", nil); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RegisterForm renders the registration screen body.
func RegisterForm() (template.HTML, error) {
	var buf strings.Builder
	if err := authTmpl.ExecuteTemplate(&buf, "register-form", nil); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
