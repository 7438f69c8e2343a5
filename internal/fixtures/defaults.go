package fixtures

import (
	"time"

	"github.com/incidentdesk/backend/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultKBDocuments returns a fresh copy of the built-in knowledge base.
func DefaultKBDocuments() []models.KBDocument {
	return []models.KBDocument{
		{
			ID:    "KB-001",
			Title: "Email Server Troubleshooting Guide",
			Content: `Complete guide for diagnosing and resolving email server issues:
1. Check server status and connectivity
2. Verify DNS records (MX, A, CNAME)
3. Test SMTP/IMAP/POP3 ports
4. Review server logs for errors
5. Check disk space and memory usage
6. Verify SSL certificates
7. Test email flow with telnet
8. Review anti-spam and firewall settings
Common solutions:
- Restart email services
- Clear mail queues
- Update SSL certificates
- Check authentication settings`,
			Category:    models.CategoryEmail,
			Tags:        []string{"email", "server", "troubleshooting", "exchange", "smtp", "imap", "connectivity"},
			LastUpdated: date("2025-01-20T00:00:00Z"),
		},
		{
			ID:    "KB-002",
			Title: "VPN Configuration and Common Issues",
			Content: `Comprehensive VPN troubleshooting guide:
1. Verify client configuration
2. Check network connectivity
3. Test authentication credentials
4. Review firewall rules
5. Check certificate validity
6. Verify routing tables
7. Test DNS resolution
8. Review bandwidth limitations
Common fixes:
- Reset network adapters
- Update VPN client software
- Reconfigure firewall exceptions
- Renew certificates
- Clear DNS cache`,
			Category:    models.CategoryNetwork,
			Tags:        []string{"vpn", "network", "connectivity", "remote", "authentication", "firewall"},
			LastUpdated: date("2025-01-15T00:00:00Z"),
		},
		{
			ID:    "KB-003",
			Title: "Email Authentication Problems",
			Content: `Resolving email authentication issues:
1. Check user credentials
2. Verify account permissions
3. Test with different email clients
4. Review multi-factor authentication
5. Check for account lockouts
6. Verify domain authentication
7. Test LDAP/AD connectivity
8. Review OAuth settings
Solutions:
- Reset user passwords
- Clear credential cache
- Update authentication protocols
- Configure app passwords
- Review security policies`,
			Category:    models.CategoryEmail,
			Tags:        []string{"email", "authentication", "outlook", "credentials", "oauth", "ldap"},
			LastUpdated: date("2025-01-10T00:00:00Z"),
		},
		{
			ID:    "KB-004",
			Title: "Network Connectivity Issues",
			Content: `Network troubleshooting methodology:
1. Test basic connectivity (ping)
2. Check physical connections
3. Verify IP configuration
4. Test DNS resolution
5. Check routing tables
6. Review switch/router logs
7. Test different protocols
8. Monitor bandwidth usage
Common fixes:
- Restart network equipment
- Update network drivers
- Configure static IP
- Flush DNS cache
- Reset TCP/IP stack`,
			Category:    models.CategoryNetwork,
			Tags:        []string{"network", "connectivity", "ping", "dns", "routing", "switch", "router"},
			LastUpdated: date("2025-01-12T00:00:00Z"),
		},
		{
			ID:    "KB-005",
			Title: "Application Performance Issues",
			Content: `Application performance troubleshooting:
1. Monitor CPU and memory usage
2. Check database performance
3. Review application logs
4. Test network latency
5. Analyze disk I/O
6. Check for memory leaks
7. Review configuration settings
8. Test under different loads
Optimization techniques:
- Update application versions
- Optimize database queries
- Increase memory allocation
- Configure caching
- Load balancing`,
			Category:    models.CategoryApplication,
			Tags:        []string{"performance", "application", "cpu", "memory", "database", "optimization"},
			LastUpdated: date("2025-01-08T00:00:00Z"),
		},
	}
}

// DefaultHistoricalTickets returns the sample used for duplicate detection.
func DefaultHistoricalTickets() []models.TicketSummary {
	return []models.TicketSummary{
		{
			TicketID:    "INC-001",
			Title:       "Email server not responding",
			Description: "Users unable to access email. Server appears to be down.",
			Category:    models.CategoryEmail,
			CreatedAt:   date("2025-01-31T09:00:00Z"),
		},
		{
			TicketID:    "INC-003",
			Title:       "Email service outage",
			Description: "Cannot connect to email server. Multiple users affected.",
			Category:    models.CategoryEmail,
			CreatedAt:   date("2025-01-31T09:30:00Z"),
		},
		{
			TicketID:    "INC-004",
			Title:       "VPN connectivity problems",
			Description: "Users reporting VPN connection failures across multiple locations.",
			Category:    models.CategoryNetwork,
			CreatedAt:   date("2025-01-31T10:00:00Z"),
		},
		{
			TicketID:    "INC-005",
			Title:       "Application crashes on startup",
			Description: "CRM application failing to start. Error message displayed.",
			Category:    models.CategoryApplication,
			CreatedAt:   date("2025-01-31T10:30:00Z"),
		},
	}
}

// DefaultSeedTickets returns the tickets an empty in-memory store starts with.
func DefaultSeedTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:          "INC-001",
			Title:       "Email server not responding",
			Description: "Users unable to access email. Server appears to be down.",
			Priority:    models.PriorityHigh,
			Status:      models.StatusOpen,
			Team:        models.TeamInfrastructure,
			Category:    models.CategoryEmail,
			ReportedBy:  "System Admin",
			CreatedAt:   date("2025-01-31T09:00:00Z"),
			UpdatedAt:   date("2025-01-31T09:00:00Z"),
		},
		{
			ID:          "INC-002",
			Title:       "VPN connection issues",
			Description: "Multiple users reporting inability to connect to VPN",
			Priority:    models.PriorityMedium,
			Status:      models.StatusInProgress,
			AssignedTo:  "John Doe",
			Team:        models.TeamNetwork,
			Category:    models.CategoryNetwork,
			ReportedBy:  "Jane Smith",
			CreatedAt:   date("2025-01-31T08:30:00Z"),
			UpdatedAt:   date("2025-01-31T10:15:00Z"),
		},
	}
}
