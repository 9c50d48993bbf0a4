package template

// Canned message templates used by the rule catalog.
const (
	// Déficit
	MsgDeficitCritical = "Alerta! Você gastou {expenseAmount} mas sua renda foi apenas {incomeAmount}. Déficit de {deficitAmount}."
	MsgDeficitWarning  = "Atenção! Seus gastos ({expensePercent}) estão muito próximos da sua renda. Cuidado para não entrar no vermelho."
	MsgNegativeBalance = "Emergência! Seu saldo está negativo: {balance}. Priorize eliminar dívidas urgentemente."

	// Categorias específicas
	MsgLeisureHigh       = "Você gastou {amount} em {category} ({percent} da sua renda). Meta recomendada: até 30%."
	MsgFoodOutHigh       = "Gastos com alimentação fora de casa: {amount} ({percent}). Considere cozinhar mais em casa para economizar."
	MsgSubscriptionsHigh = "Você tem {amount} em assinaturas ({percent} da renda). Revise quais são realmente necessárias."
	MsgTransportHigh     = "Transporte consumiu {amount} ({percent}). Avalie alternativas como transporte público ou carona."
	MsgDeliveryHigh      = "Delivery: {amount} ({percent}). Reduzir pedidos pode gerar economia significativa."
	MsgRideHailingHigh   = "Apps de transporte: {amount} ({percent}). Considere transporte público para economizar."

	// Comportamento
	MsgConsecutiveSpending = "Detectamos um padrão de gastos diários consecutivos. Atenção ao hábito!"
	MsgLargePurchase       = "Grande compra detectada. Avalie o impacto na sua meta de longo prazo."
	MsgHighFrequency       = "{count} transações em {category} nos últimos 7 dias. Considere reduzir a frequência."
	MsgNightSpending       = "{count} gastos noturnos detectados. Compras noturnas tendem a ser por impulso."

	// Poupança
	MsgLowSavings       = "Sua poupança está em {savingsPercent}. Meta recomendada: pelo menos 10% da renda."
	MsgNoInvestments    = "Nenhum investimento registrado este mês. Comece pequeno, mas comece!"
	MsgExcellentSavings = "Parabéns! Você poupou {savingsPercent} da sua renda. Disciplina exemplar! 🎉"

	// Progresso na meta
	MsgSlowProgress = "Progresso de apenas {progressPercent} em 30 dias. Acelere seus aportes para atingir {goal}!"
	MsgGoodProgress = "Excelente ritmo! {progressPercent} de progresso em 30 dias. Continue assim!"
	MsgMilestone50  = "Você está na metade do caminho! {balance} de {goal} conquistados. 🎯"
	MsgMilestone75  = "Quase lá! Faltam apenas {remaining} para sua meta de {goal}. 🚀"
	MsgMilestone90  = "Reta final! Você está a {percent} da sua meta. A conquista está próxima! 💪"
	MsgGoalAchieved = "🏆 PARABÉNS! Meta de {goal} conquistada! Você é um mestre das finanças!"

	// Outros
	MsgNoTransactions     = "Nenhuma transação registrada nos últimos 7 dias. Lembre-se de registrar todos os gastos!"
	MsgUncategorizedHigh  = `Muitos gastos em "Outros" ({percent}). Categorize melhor para ter insights mais precisos.`
	MsgGoodBalance        = "Saldo positivo de {balance}! Você está no caminho certo. 💚"
	MsgConsistentTracking = "Ótimo! {count} transações registradas este mês. Controle é poder!"
)
