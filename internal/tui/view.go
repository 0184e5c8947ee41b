package tui

import (
	"fmt"
	"strings"

	"github.com/osse101/TextMaple_Go/internal/combat"
	"github.com/osse101/TextMaple_Go/internal/game"
)

func (m Model) View() string {
	if m.Quitting {
		return MsgGoodbye
	}

	var b strings.Builder
	b.WriteString(TitleBanner + "\n")
	m.writeHeader(&b)
	b.WriteString("\n")

	switch m.Screen {
	case ScreenTown:
		m.writeTown(&b)
	case ScreenStatus:
		m.writeStatus(&b)
	case ScreenInventory:
		m.writeInventory(&b)
	case ScreenShop:
		m.writeShop(&b)
	case ScreenZones:
		m.writeZones(&b)
	case ScreenEnhance:
		m.writeEnhance(&b)
	case ScreenEncounter:
		m.writeEncounter(&b)
	case ScreenSaves:
		m.writeSaves(&b)
	}

	b.WriteString("\n")
	if m.Loading {
		fmt.Fprintf(&b, "%s %s\n", m.Spinner.View(), MsgWorking)
	}
	if m.Err != nil {
		if game.IsGameplayError(m.Err) {
			fmt.Fprintf(&b, MsgRejectedFmt+"\n", m.Err)
		} else {
			fmt.Fprintf(&b, MsgErrorFmt+"\n", m.Err)
		}
	}
	if m.Notice != "" {
		if m.Notice == MsgSaved {
			b.WriteString(m.Notice + "\n")
		} else {
			fmt.Fprintf(&b, MsgWarningFmt+"\n", m.Notice)
		}
	}
	return b.String()
}

func (m Model) writeHeader(b *strings.Builder) {
	st := m.Status
	if st == nil {
		return
	}
	fmt.Fprintf(b, "%s the %s  Lv.%d  HP %d/%d  %s\n",
		st.Name, st.Job, st.Level, st.HP, st.Effective.MaxHP, FormatMeso(st.Meso))
}

func (m Model) writeTown(b *strings.Builder) {
	b.WriteString(TitleTown + "\n\n")
	if m.Status != nil && m.Status.ClassChangeAvailable {
		b.WriteString("You feel ready for a job advancement.\n")
	}
	if m.Last != nil {
		switch {
		case m.Last.Rest != nil:
			fmt.Fprintf(b, "You soak in the hot spring. HP %d. %s left.\n", m.Last.Rest.HP, FormatMeso(m.Last.Rest.Remaining))
		case m.Last.Command == game.CommandClassChange && m.Status != nil:
			fmt.Fprintf(b, "You are now a %s!\n", m.Status.Job)
		}
	}
	b.WriteString(HelpTown + "\n")
}

func (m Model) writeStatus(b *strings.Builder) {
	b.WriteString(TitleStatus + "\n\n")
	st := m.Status
	if st == nil {
		b.WriteString(MsgEmptyList + "\n")
	} else {
		fmt.Fprintf(b, "Name:    %s\n", st.Name)
		fmt.Fprintf(b, "Job:     %s\n", st.Job)
		fmt.Fprintf(b, "Level:   %d (%d/%d exp)\n", st.Level, st.Exp, st.ExpToNextLevel)
		fmt.Fprintf(b, "Attack:  %d (+%d) = %d\n", st.Base.Attack, st.Bonus.Attack, st.Effective.Attack)
		fmt.Fprintf(b, "Defense: %d (+%d) = %d\n", st.Base.Defense, st.Bonus.Defense, st.Effective.Defense)
		fmt.Fprintf(b, "HP:      %d (+%d) = %d/%d\n", st.Base.MaxHP, st.Bonus.MaxHP, st.HP, st.Effective.MaxHP)
		fmt.Fprintf(b, "Meso:    %s\n", FormatMeso(st.Meso))
	}
	b.WriteString("\n" + HelpBack + "\n")
}

func (m Model) writeInventory(b *strings.Builder) {
	b.WriteString(TitleInventory + "\n\n")
	if len(m.Inventory) == 0 {
		b.WriteString(MsgEmptyList + "\n")
	}
	for i, it := range m.Inventory {
		mark := " "
		if it.Equipped {
			mark = "E"
		}
		fmt.Fprintf(b, "%s [%s] %-28s %-8s +%d %s  sells for %s\n",
			cursor(i == m.Cursor), mark, it.DisplayName, it.Slot, it.Power, it.StatType, FormatMeso(it.SalePrice))
	}
	if m.Last != nil {
		switch {
		case m.Last.Toggle != nil:
			t := m.Last.Toggle
			if t.Equipped {
				fmt.Fprintf(b, "\nEquipped %s.", t.Item.DisplayName())
				if t.Replaced != nil {
					fmt.Fprintf(b, " Took off %s.", t.Replaced.DisplayName())
				}
				b.WriteString("\n")
			} else {
				fmt.Fprintf(b, "\nTook off %s.\n", t.Item.DisplayName())
			}
		case m.Last.Sale != nil:
			fmt.Fprintf(b, "\nSold %s for %s.\n", m.Last.Sale.Item.DisplayName(), FormatMeso(m.Last.Sale.Price))
		}
	}
	b.WriteString("\n" + HelpInventory + "\n")
}

func (m Model) writeShop(b *strings.Builder) {
	b.WriteString(TitleShop + "\n\n")
	if len(m.Shop) == 0 {
		b.WriteString(MsgEmptyList + "\n")
	}
	for i, l := range m.Shop {
		price := FormatMeso(l.Price)
		if l.Purchased {
			price = "sold out"
		}
		fmt.Fprintf(b, "%s %-20s %-8s +%d %s  %s\n", cursor(i == m.Cursor), l.Name, l.Slot, l.Power, l.StatType, price)
		if i == m.Cursor && l.Description != "" {
			fmt.Fprintf(b, "      %s\n", l.Description)
		}
	}
	if m.Last != nil && m.Last.Purchase != nil {
		fmt.Fprintf(b, "\nBought %s. %s left.\n", m.Last.Purchase.Item.Name, FormatMeso(m.Last.Purchase.Remaining))
	}
	b.WriteString("\n" + HelpShop + "\n")
}

func (m Model) writeZones(b *strings.Builder) {
	b.WriteString(TitleZones + "\n\n")
	for i, z := range m.Zones {
		boss := ""
		if z.Boss {
			boss = " (boss)"
		}
		fmt.Fprintf(b, "%s %-16s %s%s  %d exp  %s\n", cursor(i == m.Cursor), z.Name, z.MonsterName, boss, z.ExpReward, FormatMeso(z.MesoReward))
	}
	b.WriteString("\n" + HelpZones + "\n")
}

func (m Model) writeEnhance(b *strings.Builder) {
	b.WriteString(TitleEnhance + "\n\n")
	if a := m.Attempt; a != nil {
		fmt.Fprintf(b, "%s: %s. Stars %d -> %d, power %d -> %d, paid %s.\n\n",
			a.Item.Name, a.Outcome, a.LevelBefore, a.LevelAfter, a.PowerBefore, a.PowerAfter, FormatMeso(a.Cost))
	}
	q := m.Quote
	if q == nil {
		b.WriteString("\n" + HelpBack + "\n")
		return
	}
	fmt.Fprintf(b, "%s  power %d\n", q.Item.DisplayName(), q.Item.Power)
	if q.Maxed {
		b.WriteString("This item cannot be enhanced any further.\n")
	} else {
		fmt.Fprintf(b, "Cost: %s\n", FormatMeso(q.Cost))
		fmt.Fprintf(b, "Success %d%%  Failure %d%%  Downgrade %d%%\n", q.Bands.Success, q.Bands.Failure, q.Bands.Downgrade)
		if !q.Affordable {
			b.WriteString("You can't afford this.\n")
		}
	}
	b.WriteString("\n" + HelpEnhance + "\n")
}

func (m Model) writeEncounter(b *strings.Builder) {
	b.WriteString(TitleEncounter + "\n\n")
	enc := m.Encounter
	if enc == nil {
		b.WriteString(MsgPressAnyKey + "\n")
		return
	}
	if enc.Turns == 0 {
		fmt.Fprintf(b, MsgEnterZoneFmt+"\n", enc.MonsterName, enc.ZoneName)
	}
	fmt.Fprintf(b, "%s  HP %d/%d\n", enc.MonsterName, enc.MonsterHP, enc.MonsterMaxHP)
	fmt.Fprintf(b, "You  HP %d/%d\n\n", enc.PlayerHP, enc.PlayerMaxHP)

	if m.Last != nil && m.Last.Turn != nil {
		writeTurn(b, m.Last.Turn, enc.MonsterName)
	}

	if enc.State.Terminal() {
		b.WriteString("\n" + MsgPressAnyKey + "\n")
		return
	}
	b.WriteString(HelpEncounter + "\n")
}

func (m Model) writeSaves(b *strings.Builder) {
	b.WriteString(TitleSaves + "\n\n")
	sv := m.Saves
	if sv == nil || len(sv.Slots) == 0 {
		b.WriteString(MsgEmptyList + "\n")
	}
	if sv != nil {
		for _, slot := range sv.Slots {
			mark := " "
			if slot == sv.Current {
				mark = "*"
			}
			fmt.Fprintf(b, "%s %s\n", mark, slot)
		}
		fmt.Fprintf(b, "\nPlaying on slot %q.\n", sv.Current)
	}
	b.WriteString("\n" + HelpBack + "\n")
}

func writeTurn(b *strings.Builder, t *combat.TurnResult, monster string) {
	switch t.Action {
	case combat.ActionAttack:
		fmt.Fprintf(b, "You hit %s for %d.\n", monster, t.DamageDealt)
		if t.DamageTaken > 0 {
			fmt.Fprintf(b, "%s hits you for %d.\n", monster, t.DamageTaken)
		}
	case combat.ActionDefend:
		b.WriteString("You brace yourself.\n")
	case combat.ActionFlee:
		b.WriteString("You ran away safely.\n")
	}

	switch t.State {
	case combat.StateVictory:
		fmt.Fprintf(b, "%s is defeated!\n", monster)
		if r := t.Rewards; r != nil {
			fmt.Fprintf(b, "Gained %d exp and %s.\n", r.Exp, FormatMeso(r.Meso))
			for _, d := range r.Drops {
				fmt.Fprintf(b, "%s dropped %s!\n", monster, d.Name)
			}
			if r.Level != nil && r.Level.LeveledUp() {
				fmt.Fprintf(b, "Level up! You are now level %d.\n", r.Level.NewLevel)
			}
			if r.Level != nil && r.Level.ClassChangeAvailable {
				b.WriteString("A job advancement is available in town.\n")
			}
		}
	case combat.StateDefeat:
		fmt.Fprintf(b, "You were defeated... you wake up in town with %d HP.\n", t.RecoveredHP)
	}
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
