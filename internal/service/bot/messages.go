package bot

// 사용자에게 보내는 메시지입니다. 굵은 글씨 등은 HTML 모드로 전송합니다.
const (
	msgGreetingWithName = "👋 Olá, %s!\n"
	msgGreeting         = "👋 Olá!\n"

	msgHelp = "Sou o bot <b>Posta Pra Mim</b> 🤖\n" +
		"\n" +
		"Comandos disponíveis:\n" +
		"📦 /categorias – Escolher categoria (em breve)\n" +
		"🔗 Envie um link da Shopee\n" +
		"🚀 /enviar – Enviar mensagens automáticas (em breve)\n" +
		"📊 /status – Verificar status (em breve)"

	msgCommandNotAvailable = "⏳ O comando /%s ainda não está disponível. Em breve!"

	msgCapturing     = "🔍 Capturando dados do produto, aguarde..."
	msgCaptureFailed = "❌ Erro ao capturar os dados do produto. Verifique o link e tente novamente."
	msgSaved         = "✅ Produto salvo com sucesso!\n🛒 <b>%s</b>\n💰 %s"
)
